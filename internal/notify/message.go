package notify

import (
	"fmt"
	"strings"

	"github.com/mkrs2404/post-reminder/internal/logic"
)

const untitledPlaceholder = "Untitled"

// ComposeMessage renders the reminder text for one trigger: who it is
// for, which post, which deadline, and when. Assignees resolve to
// mention tokens when the user directory knows them, otherwise their
// plain name is used; an unassigned post still identifies itself.
func (n *Notifier) ComposeMessage(trigger logic.Trigger) string {
	title := trigger.Record.Title
	if title == "" {
		title = untitledPlaceholder
	}

	message := fmt.Sprintf(
		"Your post %q has its %s date coming up tomorrow (%s). Please make sure the content is ready and reviewed for this stage.",
		title,
		trigger.Kind.Label(),
		trigger.Date.Format("2006-01-02"),
	)

	var recipients []string
	for _, assignee := range trigger.Record.Assignees {
		if token, ok := n.mentions[assignee]; ok {
			recipients = append(recipients, token)
		} else {
			recipients = append(recipients, assignee)
		}
	}
	if len(recipients) > 0 {
		message = strings.Join(recipients, " ") + " - " + message
	}

	return message
}
