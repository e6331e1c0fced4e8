// Package workspace builds the ordered list of windows on the active
// desktop from the window manager's client list.
package workspace

import (
	"errors"
	"fmt"

	"github.com/mbroemme/fbctrl/internal/desktop"
	"github.com/mbroemme/fbctrl/internal/logging"
	"github.com/mbroemme/fbctrl/internal/models"
	"github.com/mbroemme/fbctrl/internal/property"
	"github.com/mbroemme/fbctrl/internal/types"
)

// ErrProtocolUnavailable is returned when no client list can be read
var ErrProtocolUnavailable = errors.New("client list unavailable")

// Entry is one client list window with its desktop, if known
type Entry struct {
	Window     types.Window
	Desktop    types.Desktop
	HasDesktop bool
}

// Workspace is the window manager state a window action works on
type Workspace struct {
	Desktop types.Desktop
	// Clients is the raw client list in window manager order
	Clients []Entry
	// Windows holds the clients on Desktop, in client list order
	Windows []types.Window
	Active  types.Window
	// HasActive is false when no window is focused
	HasActive bool
}

// ActiveIndex returns the position of the active window in Windows, or -1
func (ws *Workspace) ActiveIndex() int {
	if !ws.HasActive {
		return -1
	}
	for i, w := range ws.Windows {
		if w == ws.Active {
			return i
		}
	}
	return -1
}

// Filter returns the windows of entries that are on desktop d, keeping
// their relative order. Entries without a desktop never match.
func Filter(entries []Entry, d types.Desktop) []types.Window {
	out := make([]types.Window, 0, len(entries))
	for _, e := range entries {
		if e.HasDesktop && e.Desktop == d {
			out = append(out, e.Window)
		}
	}
	return out
}

// Enumerator reads the client list and per-window desktops
type Enumerator struct {
	table    property.Table
	desktops *desktop.Resolver
}

// NewEnumerator creates an enumerator using the given property table
func NewEnumerator(table property.Table) *Enumerator {
	return &Enumerator{
		table:    table,
		desktops: desktop.NewResolver(table),
	}
}

// Enumerate reads the client list, the active window and the current
// desktop, then resolves the desktop of every client. A client whose
// desktop cannot be read is left out of Windows.
func (e *Enumerator) Enumerate(src desktop.Source) (*Workspace, error) {
	root := src.Root()

	clients, alt, err := property.LookupWindows(src, root, e.table.ClientList)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocolUnavailable, err)
	}
	logging.Debug().Str("property", alt.Name).Int("clients", len(clients)).Msg("client list")

	ws := &Workspace{}

	active, _, err := property.LookupWindow(src, root, e.table.ActiveWindow)
	if err == nil && active != types.NoWindow {
		ws.Active = active
		ws.HasActive = true
	} else if err != nil {
		logging.Debug().Err(err).Msg("no active window")
	}

	ws.Desktop, err = e.desktops.Current(src)
	if err != nil {
		return nil, err
	}

	ws.Clients = make([]Entry, 0, len(clients))
	for _, w := range clients {
		entry := Entry{Window: w}
		d, dalt, err := property.LookupDesktop(src, w, e.table.WindowDesktop)
		if err == nil {
			entry.Desktop = d
			entry.HasDesktop = true
			logging.Debug().Stringer("window", w).Int32("desktop", d.Signed()).Str("property", dalt.Name).Msg("client")
		} else {
			logging.Debug().Stringer("window", w).Err(err).Msg("client without desktop, skipped")
		}
		ws.Clients = append(ws.Clients, entry)
	}

	ws.Windows = Filter(ws.Clients, ws.Desktop)

	logging.Debug().
		Stringer("active", ws.Active).
		Int32("desktop", ws.Desktop.Signed()).
		Int("windows", len(ws.Windows)).
		Msg("workspace resolved")

	return ws, nil
}

// Report builds the listing of the active desktop. title is called once
// per window; it may return "" when no title is known.
func (ws *Workspace) Report(title func(types.Window) string) *models.WorkspaceReport {
	report := &models.WorkspaceReport{
		Desktop: ws.Desktop,
		Windows: make([]models.WindowRow, 0, len(ws.Windows)),
	}
	if ws.HasActive {
		report.Active = ws.Active
	}

	for i, w := range ws.Windows {
		row := models.WindowRow{
			Index:  i,
			Window: w,
			Active: ws.HasActive && w == ws.Active,
		}
		if title != nil {
			row.Title = title(w)
		}
		report.Windows = append(report.Windows, row)
	}
	return report
}
