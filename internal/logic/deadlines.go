package logic

import (
	"time"

	"github.com/mkrs2404/post-reminder/internal/notion"
)

// DeadlineKind identifies which tracked milestone a trigger refers to.
type DeadlineKind string

const (
	KindFirstDraft DeadlineKind = "first_draft"
	KindReadyBy    DeadlineKind = "ready_by"
	KindPublishing DeadlineKind = "publishing"
)

// Label returns the human form used in chat messages.
func (k DeadlineKind) Label() string {
	switch k {
	case KindFirstDraft:
		return "first draft"
	case KindReadyBy:
		return "ready by"
	case KindPublishing:
		return "publishing"
	}
	return string(k)
}

// Trigger is one deadline on one record falling exactly one day ahead
// of today. Triggers live for a single run; nothing remembers them, so
// the same deadline fires again on every run until its date passes.
type Trigger struct {
	Record notion.ContentRecord
	Kind   DeadlineKind
	Date   time.Time
}

// DateOf truncates t to its calendar date, normalized to midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UpcomingDeadlines reports which of the record's deadline dates fall
// exactly one day after today, in fixed kind order. today is always
// passed in; the system clock is never consulted here.
func UpcomingDeadlines(today time.Time, record notion.ContentRecord) []Trigger {
	tomorrow := DateOf(today).AddDate(0, 0, 1)

	deadlines := []struct {
		kind DeadlineKind
		date *time.Time
	}{
		{KindFirstDraft, record.FirstDraft},
		{KindReadyBy, record.ReadyBy},
		{KindPublishing, record.Publishing},
	}

	var triggers []Trigger
	for _, deadline := range deadlines {
		if deadline.date != nil && deadline.date.Equal(tomorrow) {
			triggers = append(triggers, Trigger{
				Record: record,
				Kind:   deadline.kind,
				Date:   *deadline.date,
			})
		}
	}
	return triggers
}
