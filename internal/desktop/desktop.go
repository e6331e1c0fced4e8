// Package desktop resolves the current virtual desktop and the number of
// desktops from root window properties.
package desktop

import (
	"errors"
	"fmt"

	"github.com/mbroemme/fbctrl/internal/logging"
	"github.com/mbroemme/fbctrl/internal/models"
	"github.com/mbroemme/fbctrl/internal/property"
	"github.com/mbroemme/fbctrl/internal/types"
)

// ErrDesktopUnavailable is returned when neither namespace reports the
// current desktop or the desktop count
var ErrDesktopUnavailable = errors.New("desktop information unavailable")

// Source is a property reader that knows its root window
type Source interface {
	property.Reader
	Root() types.Window
}

// Resolver reads desktop state through a property table
type Resolver struct {
	table property.Table
}

// NewResolver creates a resolver using the given property table
func NewResolver(table property.Table) *Resolver {
	return &Resolver{table: table}
}

// Current returns the index of the active desktop
func (r *Resolver) Current(src Source) (types.Desktop, error) {
	current, _, err := r.current(src)
	return current, err
}

func (r *Resolver) current(src Source) (types.Desktop, property.Alternative, error) {
	current, alt, err := property.LookupDesktop(src, src.Root(), r.table.CurrentDesktop)
	if err != nil {
		return 0, alt, fmt.Errorf("%w: %w", ErrDesktopUnavailable, err)
	}

	logging.Debug().Str("property", alt.Name).Int32("desktop", current.Signed()).Msg("active desktop")
	return current, alt, nil
}

// Count returns the number of desktops
func (r *Resolver) Count(src Source) (uint32, error) {
	count, alt, err := property.LookupCardinal(src, src.Root(), r.table.DesktopCount)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDesktopUnavailable, err)
	}

	logging.Debug().Str("property", alt.Name).Uint32("count", count).Msg("desktop count")
	return count, nil
}

// Resolve returns the current desktop and the desktop count. A current
// index at or beyond the count is returned as reported.
func (r *Resolver) Resolve(src Source) (types.DesktopState, error) {
	current, err := r.Current(src)
	if err != nil {
		return types.DesktopState{}, err
	}

	count, err := r.Count(src)
	if err != nil {
		return types.DesktopState{}, err
	}

	if uint32(current) >= count {
		logging.Warn().Uint32("current", uint32(current)).Uint32("count", count).Msg("window manager reports current desktop outside desktop range")
	}

	return types.DesktopState{Current: current, Count: count}, nil
}

// Describe reads the desktop state for display, naming the property the
// current desktop was read from
func (r *Resolver) Describe(src Source) (*models.DesktopReport, error) {
	current, alt, err := r.current(src)
	if err != nil {
		return nil, err
	}

	count, err := r.Count(src)
	if err != nil {
		return nil, err
	}

	return &models.DesktopReport{Current: current, Count: count, Source: alt.Name}, nil
}
