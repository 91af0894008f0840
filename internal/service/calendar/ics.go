// Package calendar renders the public event calendar as an iCalendar
// document.
package calendar

import (
	"fmt"
	"strings"

	"github.com/lukasbehr/messecall/internal/models"
)

// icsTimeLayout is the UTC "basic" timestamp format required by the feed.
const icsTimeLayout = "20060102T150405Z"

// BuildPublicEventsICS renders the events as one VCALENDAR document.
// Line order, UID shape and CRLF joining are part of the published
// contract; subscribed calendar clients depend on them.
func BuildPublicEventsICS(events []models.Event) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//MesseCall//DE",
	}
	for _, event := range events {
		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:event-%d@messecall", event.ID),
			"DTSTART:"+event.StartTime.UTC().Format(icsTimeLayout),
			"DTEND:"+event.EndTime.UTC().Format(icsTimeLayout),
			"SUMMARY:"+event.Type,
			"LOCATION:"+event.Location,
			"DESCRIPTION:"+event.Description,
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}
