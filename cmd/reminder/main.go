package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slack-go/slack"

	"github.com/mkrs2404/post-reminder/internal/app"
	"github.com/mkrs2404/post-reminder/internal/config"
	"github.com/mkrs2404/post-reminder/internal/logic"
	"github.com/mkrs2404/post-reminder/internal/notify"
	"github.com/mkrs2404/post-reminder/internal/notion"
	pkgconfig "github.com/mkrs2404/post-reminder/pkg/config"
	"github.com/mkrs2404/post-reminder/pkg/logging"
	"github.com/mkrs2404/post-reminder/pkg/monitoring"
	"github.com/mkrs2404/post-reminder/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("post-reminder")
	pkgconfig.LoadEnv(logger)

	runID := uuid.NewString()
	logger.WithFields(logging.Fields{
		"run_id":  runID,
		"version": version.Version,
		"commit":  version.GetShortCommit(),
	}).Info("Starting content deadline reminder run")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Configuration is incomplete")
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.WithError(err).Fatalf("Invalid REMINDER_TIMEZONE %q", cfg.Timezone)
	}

	notionClient := notion.NewClient(cfg.NotionToken, cfg.NotionDatabaseID)
	notifier := notify.New(notify.Config{
		API:     slack.New(cfg.SlackBotToken),
		Channel: cfg.SlackChannelID,
		DryRun:  cfg.DryRun,
		Logger:  logger,
	})

	ctx := context.Background()
	if cfg.ResolveMentions {
		notifier.ResolveMentions(ctx)
	}

	pipeline := &app.Pipeline{
		Fetcher:  notionClient,
		Notifier: notifier,
		Names:    cfg.PropertyNames(),
		Location: location,
		Logger:   logger,
	}

	today := logic.DateOf(time.Now().In(location))
	start := time.Now()

	summary, err := pipeline.Run(ctx, today)
	if err != nil {
		logger.WithError(err).WithField("run_id", runID).Fatal("Reminder run aborted")
	}

	logger.WithFields(logging.Fields{
		"run_id":   runID,
		"records":  summary.Records,
		"triggers": summary.Triggers,
		"sent":     summary.Sent,
		"failed":   summary.Failed,
	}).Info("Reminder run finished")

	if cfg.PushgatewayURL != "" {
		stats := monitoring.RunStats{
			Records:  summary.Records,
			Triggers: summary.Triggers,
			Sent:     summary.Sent,
			Failed:   summary.Failed,
			Duration: time.Since(start),
		}
		if err := monitoring.PushRunStats(cfg.PushgatewayURL, "post_reminder", stats); err != nil {
			logger.WithError(err).Warn("Failed to push run metrics")
		}
	}
}
