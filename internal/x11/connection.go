// Package x11 talks to the X server: it reads root and client window
// properties and sends client messages to the window manager.
package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/mbroemme/fbctrl/internal/property"
	"github.com/mbroemme/fbctrl/internal/types"
)

// DefaultMaxPropertyLength is the number of bytes read from a property
const DefaultMaxPropertyLength = 4096

var (
	// ErrNotConnected is returned when the connection was not opened
	ErrNotConnected = errors.New("not connected to X display")
	// ErrNoProperty is returned when a window does not carry a property
	ErrNoProperty = errors.New("property not set")
)

// Connection manages the connection to an X display
type Connection struct {
	displayName string
	maxLength   uint32
	xu          *xgbutil.XUtil
}

// NewConnection creates a new connection instance. An empty display name
// uses $DISPLAY.
func NewConnection(displayName string, maxLength uint32) *Connection {
	if maxLength == 0 {
		maxLength = DefaultMaxPropertyLength
	}
	return &Connection{
		displayName: displayName,
		maxLength:   maxLength,
	}
}

// Connect opens the X display
func (c *Connection) Connect() error {
	xu, err := xgbutil.NewConnDisplay(c.displayName)
	if err != nil {
		return fmt.Errorf("failed to connect to display %q: %w", c.displayName, err)
	}
	c.xu = xu
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	if c.xu != nil {
		c.xu.Conn().Close()
		c.xu = nil
	}
	return nil
}

// Root returns the root window of the default screen
func (c *Connection) Root() types.Window {
	if c.xu == nil {
		return types.NoWindow
	}
	return types.Window(c.xu.RootWin())
}

// GetProperty reads up to the configured maximum length of a property and
// returns its raw value. The stored type must match typ.
func (c *Connection) GetProperty(target types.Window, typ types.PropertyType, name string) ([]byte, error) {
	if c.xu == nil {
		return nil, ErrNotConnected
	}

	atom, err := xprop.Atm(c.xu, name)
	if err != nil {
		return nil, fmt.Errorf("failed to intern %s: %w", name, err)
	}

	want := typeAtom(typ)
	reply, err := xproto.GetProperty(c.xu.Conn(), false, xproto.Window(target), atom,
		want, 0, c.maxLength/property.WordSize).Reply()
	if err != nil {
		return nil, err
	}
	if reply.Type == xproto.AtomNone {
		return nil, ErrNoProperty
	}
	if reply.Type != want {
		return nil, property.ErrTypeMismatch
	}

	n := int(reply.Format/8) * int(reply.ValueLen)
	if n > len(reply.Value) {
		n = len(reply.Value)
	}
	return reply.Value[:n], nil
}

// SendMessage sends a 32-bit client message about target to the root
// window, where the window manager picks it up
func (c *Connection) SendMessage(target types.Window, name string, data0 uint32) error {
	if c.xu == nil {
		return ErrNotConnected
	}

	atom, err := xprop.Atm(c.xu, name)
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", name, err)
	}

	ev := clientMessage(target, atom, data0)
	return xproto.SendEventChecked(
		c.xu.Conn(),
		false,
		c.xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// WindowTitle returns the EWMH title of a window, falling back to WM_NAME
func (c *Connection) WindowTitle(w types.Window) (string, error) {
	if c.xu == nil {
		return "", ErrNotConnected
	}

	title, err := ewmh.WmNameGet(c.xu, xproto.Window(w))
	if err == nil && title != "" {
		return title, nil
	}
	title, err2 := icccm.WmNameGet(c.xu, xproto.Window(w))
	if err2 != nil {
		if err != nil {
			return "", err
		}
		return "", err2
	}
	return title, nil
}

func clientMessage(target types.Window, atom xproto.Atom, data0 uint32) xproto.ClientMessageEvent {
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(target),
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{data0, 0, 0, 0, 0}),
	}
}

func typeAtom(typ types.PropertyType) xproto.Atom {
	if typ == types.TypeWindow {
		return xproto.AtomWindow
	}
	return xproto.AtomCardinal
}
