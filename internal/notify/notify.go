package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/mkrs2404/post-reminder/internal/logic"
	"github.com/mkrs2404/post-reminder/pkg/logging"
)

// SlackAPI is the subset of the slack client the notifier uses.
type SlackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
}

// Notifier composes and delivers one reminder message per trigger to a
// single Slack channel.
type Notifier struct {
	api      SlackAPI
	channel  string
	dryRun   bool
	mentions map[string]string
	logger   logging.Logger
}

type Config struct {
	API     SlackAPI
	Channel string
	DryRun  bool
	Logger  logging.Logger
}

func New(cfg Config) *Notifier {
	return &Notifier{
		api:     cfg.API,
		channel: cfg.Channel,
		dryRun:  cfg.DryRun,
		logger:  cfg.Logger,
	}
}

// ResolveMentions loads the workspace user directory once and indexes
// active members by display name and real name, so assignees coming
// out of the content database can be tagged with a real <@U...> token.
// Lookup failure degrades to plain names and never fails the run.
func (n *Notifier) ResolveMentions(ctx context.Context) {
	users, err := n.api.GetUsersContext(ctx)
	if err != nil {
		n.logger.WithError(err).Warn("Slack user lookup failed, falling back to plain names")
		return
	}

	mentions := make(map[string]string)
	for _, user := range users {
		if user.Deleted || user.IsBot {
			continue
		}
		token := fmt.Sprintf("<@%s>", user.ID)
		for _, name := range []string{user.Profile.DisplayName, user.RealName, user.Name} {
			if name == "" {
				continue
			}
			if _, taken := mentions[name]; !taken {
				mentions[name] = token
			}
		}
	}
	n.mentions = mentions
	n.logger.WithField("users", len(users)).Debug("Resolved Slack user directory")
}

// Send delivers the reminder for one trigger to the configured channel.
// A failure belongs to this trigger alone; the caller tallies it and
// moves on.
func (n *Notifier) Send(ctx context.Context, trigger logic.Trigger) error {
	message := n.ComposeMessage(trigger)

	if n.dryRun {
		n.logger.WithFields(logging.Fields{
			"channel": n.channel,
			"message": message,
		}).Info("Dry run, skipping Slack delivery")
		return nil
	}

	_, _, err := n.api.PostMessageContext(ctx, n.channel, slack.MsgOptionText(message, false))
	return err
}
