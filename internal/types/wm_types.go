package types

import "fmt"

// Window is an X11 window handle as reported by the window manager.
// Handles have no meaningful ordering of their own.
type Window uint32

// NoWindow is the X11 "None" window.
const NoWindow Window = 0

// String returns the window handle in the 0x%.8x form used by xprop and wmctrl
func (w Window) String() string {
	return fmt.Sprintf("0x%.8x", uint32(w))
}

// Desktop is a virtual desktop index, numbered 0..count-1
type Desktop uint32

// AllDesktops is the _NET_WM_DESKTOP value for windows shown on every desktop
const AllDesktops Desktop = 0xFFFFFFFF

// Signed returns the desktop as a signed value so that AllDesktops reads as -1
func (d Desktop) Signed() int32 {
	return int32(d)
}

// DesktopState is the current desktop and the number of desktops.
// Current is expected to be below Count but is not validated.
type DesktopState struct {
	Current Desktop `json:"current" yaml:"current"`
	Count   uint32  `json:"count" yaml:"count"`
}

// Valid reports whether Current lies in [0, Count)
func (s DesktopState) Valid() bool {
	return uint32(s.Current) < s.Count
}

// PropertyType is the X11 type a property is requested with
type PropertyType int

const (
	TypeWindow PropertyType = iota
	TypeCardinal
)

// String returns the X11 atom name of the property type
func (t PropertyType) String() string {
	switch t {
	case TypeWindow:
		return "WINDOW"
	case TypeCardinal:
		return "CARDINAL"
	default:
		return "unknown"
	}
}

// Direction is the cycling direction
type Direction int

const (
	DirNext Direction = iota
	DirPrev
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirNext:
		return "next"
	case DirPrev:
		return "prev"
	default:
		return "unknown"
	}
}

// Action is one navigation request selected on the command line
type Action int

const (
	WindowNext Action = iota
	WindowPrev
	DesktopNext
	DesktopPrev
)

// String returns the command line spelling of the action
func (a Action) String() string {
	switch a {
	case WindowNext:
		return "next-window"
	case WindowPrev:
		return "prev-window"
	case DesktopNext:
		return "next-desktop"
	case DesktopPrev:
		return "prev-desktop"
	default:
		return "unknown"
	}
}

// Direction returns the cycling direction of the action
func (a Action) Direction() Direction {
	if a == WindowPrev || a == DesktopPrev {
		return DirPrev
	}
	return DirNext
}

// IsDesktop reports whether the action cycles desktops rather than windows
func (a Action) IsDesktop() bool {
	return a == DesktopNext || a == DesktopPrev
}

// MarshalText encodes the window in its hex form
func (w Window) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}
