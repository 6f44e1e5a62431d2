package dateutil

import (
	"strings"
	"time"
)

const DisplayLayout = "02 Jan 2006"

var issueDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// FormatIssueDate renders a directory issue date for display. Values in an
// unknown layout are returned trimmed but otherwise untouched.
func FormatIssueDate(raw, layout string) string {
	raw = strings.TrimSpace(raw)
	if layout == "" {
		layout = DisplayLayout
	}

	for _, l := range issueDateLayouts {
		if t, err := time.Parse(l, raw); err == nil {
			return t.Format(layout)
		}
	}

	return raw
}
