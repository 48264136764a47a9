package config

import (
	"fmt"
	"strings"

	"github.com/mkrs2404/post-reminder/internal/notion"
	"github.com/mkrs2404/post-reminder/pkg/config"
)

// Config stores everything one reminder run needs, read once at
// startup and immutable afterwards.
type Config struct {
	NotionToken      string
	NotionDatabaseID string
	SlackBotToken    string
	SlackChannelID   string

	TitleProp      string
	AuthorProp     string
	FirstDraftProp string
	ReadyByProp    string
	PublishingProp string

	Timezone        string
	DryRun          bool
	ResolveMentions bool
	PushgatewayURL  string
}

// Load reads the configuration from environment variables. Every
// missing required variable is collected before returning, so one
// failed run surfaces the complete list.
func Load() (Config, error) {
	var missing []string
	require := func(key string) string {
		value, err := config.LookupRequired(key)
		if err != nil {
			missing = append(missing, key)
		}
		return value
	}

	cfg := Config{
		NotionToken:      require("NOTION_TOKEN"),
		NotionDatabaseID: require("NOTION_DATABASE_ID"),
		SlackBotToken:    require("SLACK_BOT_TOKEN"),
		SlackChannelID:   require("SLACK_CHANNEL_ID"),

		TitleProp:      config.GetEnv("NOTION_TITLE_PROP", "title"),
		AuthorProp:     config.GetEnv("NOTION_AUTHOR_PROP", "author"),
		FirstDraftProp: config.GetEnv("NOTION_FIRST_DRAFT_DATE_PROP", "first_draft_date"),
		ReadyByProp:    config.GetEnv("NOTION_READY_BY_DATE_PROP", "ready_by_date"),
		PublishingProp: config.GetEnv("NOTION_PUBLISHING_DATE_PROP", "publishing_date"),

		Timezone:        config.GetEnv("REMINDER_TIMEZONE", "UTC"),
		DryRun:          config.GetEnvBool("DRY_RUN", false),
		ResolveMentions: config.GetEnvBool("SLACK_RESOLVE_MENTIONS", true),
		PushgatewayURL:  config.GetEnv("PUSHGATEWAY_URL", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// PropertyNames returns the database property mapping this config selects.
func (c Config) PropertyNames() notion.PropertyNames {
	return notion.PropertyNames{
		Title:      c.TitleProp,
		Author:     c.AuthorProp,
		FirstDraft: c.FirstDraftProp,
		ReadyBy:    c.ReadyByProp,
		Publishing: c.PublishingProp,
	}
}
