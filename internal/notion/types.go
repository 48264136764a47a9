package notion

import "time"

// Page is one row of a Notion database as returned by the query endpoint.
type Page struct {
	ID         string                   `json:"id"`
	URL        string                   `json:"url,omitempty"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyValue is a tagged union over the property types this job
// reads. Notion sends every property with a type discriminator and one
// populated payload field matching it.
type PropertyValue struct {
	ID       string     `json:"id,omitempty"`
	Type     string     `json:"type"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	People   []User     `json:"people,omitempty"`
	Date     *DateValue `json:"date,omitempty"`
}

// RichText is a fragment of formatted text; only the plain rendering matters here.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// User is a workspace member referenced from a people property
type User struct {
	Object string `json:"object,omitempty"`
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
}

// DateValue carries a date or datetime property value
type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// ContentRecord is a database page mapped through the configured
// property names. Absent or unreadable fields stay at their zero
// values; a nil date means the milestone was never scheduled.
type ContentRecord struct {
	ID         string
	Title      string
	Assignees  []string
	FirstDraft *time.Time
	ReadyBy    *time.Time
	Publishing *time.Time
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type queryResponse struct {
	Object     string `json:"object"`
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

type errorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
