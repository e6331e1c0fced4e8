// Package property reads window-manager state from X11 properties.
//
// Properties come in two competing namespaces: the EWMH _NET_* names and
// the older GNOME/WinWM _WIN_* names. A Policy lists the (name, type)
// alternatives for one piece of state in the order they are tried, and
// Lookup walks that list until one alternative both reads and decodes.
package property

import (
	"errors"
	"fmt"

	"github.com/mbroemme/fbctrl/internal/types"
)

// Reader fetches a raw property value. The returned bytes hold whole
// 32-bit words in X11 wire order.
type Reader interface {
	GetProperty(target types.Window, typ types.PropertyType, name string) ([]byte, error)
}

// Sender delivers a 32-bit format client message to the window manager
type Sender interface {
	SendMessage(target types.Window, name string, data0 uint32) error
}

var (
	// ErrTypeMismatch is returned when a property exists with another type
	ErrTypeMismatch = errors.New("invalid property type")
	// ErrShortValue is returned when a property holds fewer bytes than its arity needs
	ErrShortValue = errors.New("property value too short")
	// ErrNoAlternatives is returned by Lookup for an empty policy
	ErrNoAlternatives = errors.New("no property alternatives")
)

// Error describes a failed read of one named property
type Error struct {
	Name string
	Type types.PropertyType
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot get %s property: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Alternative is one (name, type) pair a piece of state can be read from
type Alternative struct {
	Name   string
	Type   types.PropertyType
	Legacy bool
}

// Policy is an ordered list of alternatives, primary first
type Policy []Alternative

// Primary returns the policy without its legacy alternatives
func (p Policy) Primary() Policy {
	out := make(Policy, 0, len(p))
	for _, alt := range p {
		if !alt.Legacy {
			out = append(out, alt)
		}
	}
	return out
}

// Table holds the policy for every piece of state the tool reads
type Table struct {
	ClientList     Policy
	ActiveWindow   Policy
	WindowDesktop  Policy
	CurrentDesktop Policy
	DesktopCount   Policy
}

// DefaultTable returns the EWMH names with their GNOME/WinWM fallbacks
func DefaultTable() Table {
	return Table{
		ClientList: Policy{
			{Name: "_NET_CLIENT_LIST", Type: types.TypeWindow},
			{Name: "_WIN_CLIENT_LIST", Type: types.TypeCardinal, Legacy: true},
		},
		ActiveWindow: Policy{
			{Name: "_NET_ACTIVE_WINDOW", Type: types.TypeWindow},
		},
		WindowDesktop: Policy{
			{Name: "_NET_WM_DESKTOP", Type: types.TypeCardinal},
			{Name: "_WIN_WORKSPACE", Type: types.TypeCardinal, Legacy: true},
		},
		CurrentDesktop: Policy{
			{Name: "_NET_CURRENT_DESKTOP", Type: types.TypeCardinal},
			{Name: "_WIN_WORKSPACE", Type: types.TypeCardinal, Legacy: true},
		},
		DesktopCount: Policy{
			{Name: "_NET_NUMBER_OF_DESKTOPS", Type: types.TypeCardinal},
			{Name: "_WIN_WORKSPACE_COUNT", Type: types.TypeCardinal, Legacy: true},
		},
	}
}

// PrimaryOnly returns a copy of the table with legacy alternatives removed
func (t Table) PrimaryOnly() Table {
	return Table{
		ClientList:     t.ClientList.Primary(),
		ActiveWindow:   t.ActiveWindow.Primary(),
		WindowDesktop:  t.WindowDesktop.Primary(),
		CurrentDesktop: t.CurrentDesktop.Primary(),
		DesktopCount:   t.DesktopCount.Primary(),
	}
}

// Lookup reads target's property through each alternative of p in order
// and returns the first value that decode accepts. The returned error is
// the failure of the last alternative tried.
func Lookup[T any](r Reader, target types.Window, p Policy, decode func([]byte) (T, error)) (T, Alternative, error) {
	var zero T
	if len(p) == 0 {
		return zero, Alternative{}, ErrNoAlternatives
	}

	var lastErr error
	for _, alt := range p {
		raw, err := r.GetProperty(target, alt.Type, alt.Name)
		if err != nil {
			lastErr = wrap(alt, err)
			continue
		}
		v, err := decode(raw)
		if err != nil {
			lastErr = wrap(alt, err)
			continue
		}
		return v, alt, nil
	}
	return zero, Alternative{}, lastErr
}

// LookupWindows reads a window list such as the client list
func LookupWindows(r Reader, target types.Window, p Policy) ([]types.Window, Alternative, error) {
	return Lookup(r, target, p, DecodeWindows)
}

// LookupWindow reads a single window such as the active window
func LookupWindow(r Reader, target types.Window, p Policy) (types.Window, Alternative, error) {
	return Lookup(r, target, p, DecodeWindow)
}

// LookupDesktop reads a single desktop index
func LookupDesktop(r Reader, target types.Window, p Policy) (types.Desktop, Alternative, error) {
	return Lookup(r, target, p, DecodeDesktop)
}

// LookupCardinal reads a single CARDINAL value
func LookupCardinal(r Reader, target types.Window, p Policy) (uint32, Alternative, error) {
	return Lookup(r, target, p, DecodeCardinal)
}

func wrap(alt Alternative, err error) error {
	var perr *Error
	if errors.As(err, &perr) && perr.Name == alt.Name {
		return err
	}
	return &Error{Name: alt.Name, Type: alt.Type, Err: err}
}
