package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("NOTION_TOKEN", "ntn-token")
	t.Setenv("NOTION_DATABASE_ID", "db-1")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-token")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
}

func clearOptional(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NOTION_TITLE_PROP", "NOTION_AUTHOR_PROP",
		"NOTION_FIRST_DRAFT_DATE_PROP", "NOTION_READY_BY_DATE_PROP", "NOTION_PUBLISHING_DATE_PROP",
		"REMINDER_TIMEZONE", "DRY_RUN", "SLACK_RESOLVE_MENTIONS", "PUSHGATEWAY_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingRequiredListsEveryVariable(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("NOTION_DATABASE_ID", "")
	t.Setenv("SLACK_BOT_TOKEN", "")
	t.Setenv("SLACK_CHANNEL_ID", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required variables")
	}
	for _, key := range []string{"NOTION_TOKEN", "NOTION_DATABASE_ID", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected error to name %s, got %v", key, err)
		}
	}
}

func TestLoadPartiallyMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("SLACK_BOT_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "SLACK_BOT_TOKEN") {
		t.Fatalf("expected error to name SLACK_BOT_TOKEN, got %v", err)
	}
	if strings.Contains(err.Error(), "NOTION_TOKEN") {
		t.Fatalf("expected error to only name missing variables, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	clearOptional(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.TitleProp != "title" || cfg.AuthorProp != "author" {
		t.Fatalf("unexpected name defaults: %+v", cfg)
	}
	if cfg.FirstDraftProp != "first_draft_date" ||
		cfg.ReadyByProp != "ready_by_date" ||
		cfg.PublishingProp != "publishing_date" {
		t.Fatalf("unexpected date property defaults: %+v", cfg)
	}
	if cfg.Timezone != "UTC" {
		t.Fatalf("expected UTC default timezone, got %s", cfg.Timezone)
	}
	if cfg.DryRun {
		t.Fatal("expected dry run off by default")
	}
	if !cfg.ResolveMentions {
		t.Fatal("expected mention resolution on by default")
	}
	if cfg.PushgatewayURL != "" {
		t.Fatalf("expected no pushgateway by default, got %s", cfg.PushgatewayURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("NOTION_TITLE_PROP", "Name")
	t.Setenv("NOTION_READY_BY_DATE_PROP", "Review Deadline")
	t.Setenv("REMINDER_TIMEZONE", "Europe/Berlin")
	t.Setenv("DRY_RUN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.TitleProp != "Name" {
		t.Fatalf("expected title override, got %s", cfg.TitleProp)
	}
	if cfg.ReadyByProp != "Review Deadline" {
		t.Fatalf("expected ready by override, got %s", cfg.ReadyByProp)
	}
	if cfg.Timezone != "Europe/Berlin" {
		t.Fatalf("expected timezone override, got %s", cfg.Timezone)
	}
	if !cfg.DryRun {
		t.Fatal("expected dry run on")
	}

	names := cfg.PropertyNames()
	if names.Title != "Name" || names.ReadyBy != "Review Deadline" || names.Publishing != "publishing_date" {
		t.Fatalf("unexpected property names: %+v", names)
	}
}
