// Package ui holds terminal formatting helpers for the sync summary.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// FormatSummary renders the final summary line, green when every entity
// synced and plain otherwise.
func FormatSummary(synced, total int) string {
	line := fmt.Sprintf("Synced %d/%d entities", synced, total)
	if synced == total {
		return color.GreenString("%s", line)
	}
	return line
}
