package desktop

import (
	"errors"
	"testing"

	"github.com/mbroemme/fbctrl/internal/property"
	"github.com/mbroemme/fbctrl/internal/types"
	"github.com/mbroemme/fbctrl/internal/wmtest"
)

func TestResolvePrimary(t *testing.T) {
	d := wmtest.NewDisplay().SetDesktops(1, 4)

	state, err := NewResolver(property.DefaultTable()).Resolve(d)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if state.Current != 1 || state.Count != 4 {
		t.Errorf("Resolve() = %+v, want current 1 count 4", state)
	}
}

func TestResolveLegacy(t *testing.T) {
	d := wmtest.NewDisplay()
	d.Set(d.Root(), "_WIN_WORKSPACE", types.TypeCardinal, 2)
	d.Set(d.Root(), "_WIN_WORKSPACE_COUNT", types.TypeCardinal, 3)

	state, err := NewResolver(property.DefaultTable()).Resolve(d)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if state.Current != 2 || state.Count != 3 {
		t.Errorf("Resolve() = %+v, want current 2 count 3", state)
	}
}

func TestResolveMixedNamespaces(t *testing.T) {
	d := wmtest.NewDisplay()
	d.Set(d.Root(), "_NET_CURRENT_DESKTOP", types.TypeCardinal, 0)
	d.Set(d.Root(), "_WIN_WORKSPACE_COUNT", types.TypeCardinal, 2)

	state, err := NewResolver(property.DefaultTable()).Resolve(d)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if state.Current != 0 || state.Count != 2 {
		t.Errorf("Resolve() = %+v, want current 0 count 2", state)
	}
}

func TestResolveCurrentUnavailable(t *testing.T) {
	d := wmtest.NewDisplay()
	d.Set(d.Root(), "_NET_NUMBER_OF_DESKTOPS", types.TypeCardinal, 4)

	_, err := NewResolver(property.DefaultTable()).Resolve(d)
	if !errors.Is(err, ErrDesktopUnavailable) {
		t.Fatalf("err = %v, want ErrDesktopUnavailable", err)
	}

	var perr *property.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected a property error in %v", err)
	}
	if perr.Name != "_WIN_WORKSPACE" {
		t.Errorf("error names %s, want _WIN_WORKSPACE", perr.Name)
	}
}

func TestResolveCountUnavailable(t *testing.T) {
	d := wmtest.NewDisplay()
	d.Set(d.Root(), "_NET_CURRENT_DESKTOP", types.TypeCardinal, 0)

	_, err := NewResolver(property.DefaultTable()).Resolve(d)
	if !errors.Is(err, ErrDesktopUnavailable) {
		t.Fatalf("err = %v, want ErrDesktopUnavailable", err)
	}
}

func TestResolveWithoutLegacy(t *testing.T) {
	d := wmtest.NewDisplay()
	d.Set(d.Root(), "_WIN_WORKSPACE", types.TypeCardinal, 2)
	d.Set(d.Root(), "_WIN_WORKSPACE_COUNT", types.TypeCardinal, 3)

	_, err := NewResolver(property.DefaultTable().PrimaryOnly()).Resolve(d)
	if !errors.Is(err, ErrDesktopUnavailable) {
		t.Fatalf("err = %v, want ErrDesktopUnavailable", err)
	}
	for _, name := range d.Reads {
		if name == "_WIN_WORKSPACE" {
			t.Error("legacy property read with legacy fallback disabled")
		}
	}
}

func TestResolvePassesThroughOutOfRange(t *testing.T) {
	d := wmtest.NewDisplay().SetDesktops(5, 3)

	state, err := NewResolver(property.DefaultTable()).Resolve(d)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if state.Current != 5 || state.Count != 3 {
		t.Errorf("Resolve() = %+v, want the reported values unchanged", state)
	}
}

func TestDescribeNamesSource(t *testing.T) {
	d := wmtest.NewDisplay()
	d.Set(d.Root(), "_WIN_WORKSPACE", types.TypeCardinal, 1)
	d.Set(d.Root(), "_NET_NUMBER_OF_DESKTOPS", types.TypeCardinal, 2)

	report, err := NewResolver(property.DefaultTable()).Describe(d)
	if err != nil {
		t.Fatalf("Describe() error: %v", err)
	}
	if report.Current != 1 || report.Count != 2 || report.Source != "_WIN_WORKSPACE" {
		t.Errorf("Describe() = %+v", report)
	}

	if _, err := NewResolver(property.DefaultTable()).Describe(wmtest.NewDisplay()); !errors.Is(err, ErrDesktopUnavailable) {
		t.Errorf("Describe() on empty display = %v, want ErrDesktopUnavailable", err)
	}
}
