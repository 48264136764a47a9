package notion

import (
	"fmt"
	"strings"
	"time"
)

// PropertyNames selects which database properties map onto a
// ContentRecord. Editorial databases name these columns differently,
// so every name is configurable.
type PropertyNames struct {
	Title      string
	Author     string
	FirstDraft string
	ReadyBy    string
	Publishing string
}

// MappingIssue records a property value that could not be interpreted.
// Partial data is normal for in-progress content; an issue downgrades
// the field to absent instead of failing the page.
type MappingIssue struct {
	PageID   string
	Property string
	Reason   string
}

// MapPage maps a raw database page into a ContentRecord using the
// configured property names. loc decides which calendar day a
// datetime-valued deadline lands on; nil means UTC.
func MapPage(page Page, names PropertyNames, loc *time.Location) (ContentRecord, []MappingIssue) {
	if loc == nil {
		loc = time.UTC
	}

	record := ContentRecord{ID: page.ID}
	var issues []MappingIssue
	report := func(property, reason string) {
		issues = append(issues, MappingIssue{PageID: page.ID, Property: property, Reason: reason})
	}

	if prop, ok := page.Properties[names.Title]; ok {
		if prop.Type == "title" {
			record.Title = plainText(prop.Title)
		} else {
			report(names.Title, fmt.Sprintf("expected a title property, got %s", prop.Type))
		}
	}

	if prop, ok := page.Properties[names.Author]; ok {
		if prop.Type == "people" {
			for _, user := range prop.People {
				if user.Name != "" {
					record.Assignees = append(record.Assignees, user.Name)
				}
			}
		} else {
			report(names.Author, fmt.Sprintf("expected a people property, got %s", prop.Type))
		}
	}

	mapDate := func(property string) *time.Time {
		prop, ok := page.Properties[property]
		if !ok {
			return nil
		}
		if prop.Type != "date" {
			report(property, fmt.Sprintf("expected a date property, got %s", prop.Type))
			return nil
		}
		if prop.Date == nil || prop.Date.Start == "" {
			return nil
		}
		date, err := parseStart(prop.Date.Start, loc)
		if err != nil {
			report(property, fmt.Sprintf("unparseable date %q", prop.Date.Start))
			return nil
		}
		return &date
	}

	record.FirstDraft = mapDate(names.FirstDraft)
	record.ReadyBy = mapDate(names.ReadyBy)
	record.Publishing = mapDate(names.Publishing)

	return record, issues
}

func plainText(fragments []RichText) string {
	var b strings.Builder
	for _, fragment := range fragments {
		b.WriteString(fragment.PlainText)
	}
	return strings.TrimSpace(b.String())
}

// parseStart accepts the two forms a Notion date start comes in: a bare
// date, or an RFC 3339 datetime when someone set a time of day on the
// deadline. Either way the result is the calendar date at midnight UTC.
func parseStart(start string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", start, loc); err == nil {
		return dateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, err
	}
	return dateOf(t.In(loc)), nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
