// Package wmtest provides an in-memory window manager for tests.
package wmtest

import (
	"errors"
	"fmt"

	"github.com/mbroemme/fbctrl/internal/property"
	"github.com/mbroemme/fbctrl/internal/types"
)

// DefaultRoot is the root window of a new Display
const DefaultRoot types.Window = 0x100

// ErrNoProperty is returned for properties that were never set
var ErrNoProperty = errors.New("no such property")

// Message is one client message delivered through SendMessage
type Message struct {
	Target types.Window
	Name   string
	Data0  uint32
}

type value struct {
	typ  types.PropertyType
	data []byte
}

// Display holds properties and records sent messages. It implements
// property.Reader and property.Sender.
type Display struct {
	RootWindow types.Window
	Sent       []Message
	Reads      []string
	Closed     bool
	SendErr    error

	props map[string]value
}

// NewDisplay creates an empty display
func NewDisplay() *Display {
	return &Display{
		RootWindow: DefaultRoot,
		props:      make(map[string]value),
	}
}

func key(target types.Window, name string) string {
	return fmt.Sprintf("%d/%s", target, name)
}

// Set stores a property made of 32-bit words
func (d *Display) Set(target types.Window, name string, typ types.PropertyType, words ...uint32) *Display {
	d.props[key(target, name)] = value{typ: typ, data: property.EncodeWords(words...)}
	return d
}

// SetRaw stores a property value as given
func (d *Display) SetRaw(target types.Window, name string, typ types.PropertyType, data []byte) *Display {
	d.props[key(target, name)] = value{typ: typ, data: data}
	return d
}

// SetClientList stores _NET_CLIENT_LIST on the root window
func (d *Display) SetClientList(windows ...types.Window) *Display {
	return d.Set(d.RootWindow, "_NET_CLIENT_LIST", types.TypeWindow, words(windows)...)
}

// SetActive stores _NET_ACTIVE_WINDOW on the root window
func (d *Display) SetActive(w types.Window) *Display {
	return d.Set(d.RootWindow, "_NET_ACTIVE_WINDOW", types.TypeWindow, uint32(w))
}

// SetDesktops stores _NET_CURRENT_DESKTOP and _NET_NUMBER_OF_DESKTOPS
func (d *Display) SetDesktops(current types.Desktop, count uint32) *Display {
	d.Set(d.RootWindow, "_NET_CURRENT_DESKTOP", types.TypeCardinal, uint32(current))
	return d.Set(d.RootWindow, "_NET_NUMBER_OF_DESKTOPS", types.TypeCardinal, count)
}

// SetWindowDesktop stores _NET_WM_DESKTOP on a client window
func (d *Display) SetWindowDesktop(w types.Window, desktop types.Desktop) *Display {
	return d.Set(w, "_NET_WM_DESKTOP", types.TypeCardinal, uint32(desktop))
}

// Root returns the root window
func (d *Display) Root() types.Window {
	return d.RootWindow
}

// GetProperty implements property.Reader
func (d *Display) GetProperty(target types.Window, typ types.PropertyType, name string) ([]byte, error) {
	d.Reads = append(d.Reads, name)
	v, ok := d.props[key(target, name)]
	if !ok {
		return nil, ErrNoProperty
	}
	if v.typ != typ {
		return nil, property.ErrTypeMismatch
	}
	return v.data, nil
}

// SendMessage implements property.Sender
func (d *Display) SendMessage(target types.Window, name string, data0 uint32) error {
	if d.SendErr != nil {
		return d.SendErr
	}
	d.Sent = append(d.Sent, Message{Target: target, Name: name, Data0: data0})
	return nil
}

// Close marks the display closed
func (d *Display) Close() error {
	d.Closed = true
	return nil
}

func words(windows []types.Window) []uint32 {
	out := make([]uint32, len(windows))
	for i, w := range windows {
		out[i] = uint32(w)
	}
	return out
}
