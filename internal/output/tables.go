package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/mbroemme/fbctrl/internal/models"
)

// minTitleWidth keeps titles readable on very narrow terminals
const minTitleWidth = 16

// PrintWorkspaceTable prints the windows of the active desktop in client
// list order. Titles are shortened to fit a terminal of the given width.
func PrintWorkspaceTable(w io.Writer, report *models.WorkspaceReport, width int) {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Window", "Title", "Active")

	// index, window id, active marker and borders take roughly 32 columns
	titleWidth := width - 32
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}

	for _, row := range report.Windows {
		active := ""
		if row.Active {
			active = "*"
		}

		table.Append(
			fmt.Sprintf("%d", row.Index),
			row.Window.String(),
			truncate(row.Title, titleWidth),
			active,
		)
	}

	table.Render()
}

// PrintDesktopTable prints the current desktop and the desktop count
func PrintDesktopTable(w io.Writer, report *models.DesktopReport) {
	table := tablewriter.NewWriter(w)
	table.Header("Current", "Count", "Source")

	source := report.Source
	if source == "" {
		source = "-"
	}

	table.Append(
		fmt.Sprintf("%d", report.Current.Signed()),
		fmt.Sprintf("%d", report.Count),
		source,
	)

	table.Render()
}

// truncate shortens s to maxLen runes, marking the cut with "..."
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
