package x11

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mbroemme/fbctrl/internal/types"
)

func TestTypeAtom(t *testing.T) {
	if got := typeAtom(types.TypeWindow); got != xproto.AtomWindow {
		t.Errorf("typeAtom(WINDOW) = %d, want %d", got, xproto.AtomWindow)
	}
	if got := typeAtom(types.TypeCardinal); got != xproto.AtomCardinal {
		t.Errorf("typeAtom(CARDINAL) = %d, want %d", got, xproto.AtomCardinal)
	}
}

func TestClientMessage(t *testing.T) {
	ev := clientMessage(0x01000002, 42, 7)

	if ev.Format != 32 {
		t.Errorf("Format = %d, want 32", ev.Format)
	}
	if ev.Window != 0x01000002 {
		t.Errorf("Window = %#x, want 0x01000002", ev.Window)
	}
	if ev.Type != 42 {
		t.Errorf("Type = %d, want 42", ev.Type)
	}

	data := ev.Data.Data32
	if len(data) != 5 {
		t.Fatalf("len(Data32) = %d, want 5", len(data))
	}
	if data[0] != 7 {
		t.Errorf("data[0] = %d, want 7", data[0])
	}
	for i := 1; i < 5; i++ {
		if data[i] != 0 {
			t.Errorf("data[%d] = %d, want 0", i, data[i])
		}
	}

	// wire form: 32 bytes, first data word at offset 12
	raw := ev.Bytes()
	if len(raw) != 32 {
		t.Fatalf("event is %d bytes, want 32", len(raw))
	}
	if got := xgb.Get32(raw[12:]); got != 7 {
		t.Errorf("encoded data[0] = %d, want 7", got)
	}
}

func TestNewConnectionDefaults(t *testing.T) {
	c := NewConnection("", 0)
	if c.maxLength != DefaultMaxPropertyLength {
		t.Errorf("maxLength = %d, want %d", c.maxLength, DefaultMaxPropertyLength)
	}
	if c.Root() != types.NoWindow {
		t.Error("unconnected root should be NoWindow")
	}
}

func TestUnconnectedCalls(t *testing.T) {
	c := NewConnection(":99", 64)

	if _, err := c.GetProperty(1, types.TypeWindow, "_NET_CLIENT_LIST"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("GetProperty() error = %v, want ErrNotConnected", err)
	}
	if err := c.SendMessage(1, "_NET_ACTIVE_WINDOW", 0); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendMessage() error = %v, want ErrNotConnected", err)
	}
	if _, err := c.WindowTitle(1); !errors.Is(err, ErrNotConnected) {
		t.Errorf("WindowTitle() error = %v, want ErrNotConnected", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() on unconnected = %v", err)
	}
}
