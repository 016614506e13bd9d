// Package export renders a store snapshot to interchange formats. It
// consumes the ordered record sequence as-is and knows nothing about
// how it was ranked or stored.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mleone/memoir/internal/model"
)

// Markdown renders records as a markdown document, one section per
// memory in insertion order.
func Markdown(records []model.MemoryRecord) string {
	var b strings.Builder
	b.WriteString("# Memoir Export\n\n")
	for _, r := range records {
		fmt.Fprintf(&b, "## %s (%s)\n", r.ID, r.Timestamp.UTC().Format("2006-01-02 15:04:05"))
		if len(r.Tags) > 0 {
			fmt.Fprintf(&b, "**Tags:** %s\n", strings.Join(r.Tags, ", "))
		}
		b.WriteString("\n")
		b.WriteString(r.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// JSON renders records as an indented JSON array. An empty snapshot
// renders as [], not null.
func JSON(records []model.MemoryRecord) (string, error) {
	if records == nil {
		records = []model.MemoryRecord{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
