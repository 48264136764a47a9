package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mkrs2404/post-reminder/internal/logic"
	"github.com/mkrs2404/post-reminder/internal/notion"
	"github.com/mkrs2404/post-reminder/pkg/logging"
)

// Fetcher returns every page of the content database.
type Fetcher interface {
	QueryDatabase(ctx context.Context) ([]notion.Page, error)
}

// Notifier delivers the reminder for one trigger.
type Notifier interface {
	Send(ctx context.Context, trigger logic.Trigger) error
}

// Summary counts what one run did.
type Summary struct {
	Records  int
	Triggers int
	Sent     int
	Failed   int
}

// Pipeline wires one fetch, evaluate, notify pass.
type Pipeline struct {
	Fetcher  Fetcher
	Notifier Notifier
	Names    notion.PropertyNames
	Location *time.Location
	Logger   logging.Logger
}

// Run executes the pass for the given calendar date (see logic.DateOf).
// A fetch failure aborts before anything is sent: notifying from an
// incomplete record set would look like silence for the unseen records.
// A delivery failure is counted against its trigger alone and the
// remaining triggers still go out.
func (p *Pipeline) Run(ctx context.Context, today time.Time) (Summary, error) {
	var summary Summary

	pages, err := p.Fetcher.QueryDatabase(ctx)
	if err != nil {
		return summary, fmt.Errorf("query content database: %w", err)
	}
	summary.Records = len(pages)
	p.Logger.WithField("records", summary.Records).Info("Fetched content records")

	for _, page := range pages {
		record, issues := notion.MapPage(page, p.Names, p.Location)
		for _, issue := range issues {
			p.Logger.WithFields(logging.Fields{
				"page_id":  issue.PageID,
				"property": issue.Property,
			}).Warnf("Treating property as unset: %s", issue.Reason)
		}

		for _, trigger := range logic.UpcomingDeadlines(today, record) {
			summary.Triggers++
			entry := p.Logger.WithFields(logging.Fields{
				"title":    record.Title,
				"deadline": string(trigger.Kind),
				"date":     trigger.Date.Format("2006-01-02"),
			})
			entry.Info("Deadline coming up tomorrow")

			if err := p.Notifier.Send(ctx, trigger); err != nil {
				summary.Failed++
				entry.WithError(err).Error("Failed to deliver reminder")
				continue
			}
			summary.Sent++
			entry.Info("Reminder delivered")
		}
	}

	return summary, nil
}
