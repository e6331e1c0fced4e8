// Package output formats results for the terminal: notices, errors,
// tables and JSON/YAML documents.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mbroemme/fbctrl/internal/models"
	"github.com/mbroemme/fbctrl/internal/types"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Printer writes action results and failures. It implements the
// action.Reporter interface.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
	// JSON prints each result as a JSON object instead of a notice
	JSON bool
}

// Report prints the outcome of one action
func (p *Printer) Report(res *models.Result) {
	if p.JSON {
		if err := PrintJSON(p.Out, res); err != nil {
			p.PrintError(err.Error())
		}
		return
	}

	fmt.Fprintln(p.Out, p.colorize(successColor, Notice(res)))
}

// Fail prints the error of one action
func (p *Printer) Fail(act types.Action, err error) {
	p.PrintError(fmt.Sprintf("%s: %v", act, err))
}

// PrintError prints msg on the error stream
func (p *Printer) PrintError(msg string) {
	if !p.Color {
		fmt.Fprintln(p.Err, "Error:", msg)
		return
	}
	errorColor.Fprint(p.Err, "✗ Error: ")
	fmt.Fprintln(p.Err, msg)
}

func (p *Printer) colorize(c *color.Color, s string) string {
	if !p.Color {
		return s
	}
	return c.Sprint(s)
}

// Notice returns the human readable line for a result
func Notice(res *models.Result) string {
	if !res.Sent {
		return fmt.Sprintf("Nothing to activate on Desktop ID: %d (%s)", res.Desktop.Signed(), res.Reason)
	}

	dir := "next"
	if res.Kind.Direction() == types.DirPrev {
		dir = "prev"
	}

	if res.Kind.IsDesktop() {
		if res.Wrapped && dir == "prev" {
			return fmt.Sprintf("Restarting Desktop ID: %d", res.Desktop.Signed())
		}
		if res.Wrapped {
			return fmt.Sprintf("Restarting from Desktop ID: %d", res.Desktop.Signed())
		}
		return fmt.Sprintf("Activating %s Desktop ID: %d", dir, res.Desktop.Signed())
	}

	if res.Wrapped {
		return fmt.Sprintf("Restarting from Window ID: %s on Desktop ID: %d", res.Window, res.Desktop.Signed())
	}
	return fmt.Sprintf("Activating %s Window ID: %s on Desktop ID: %d", dir, res.Window, res.Desktop.Signed())
}
