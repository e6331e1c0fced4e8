package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mbroemme/fbctrl/internal/models"
	"github.com/mbroemme/fbctrl/internal/types"
)

func result(act types.Action, w types.Window, d types.Desktop, wrapped bool) *models.Result {
	res := models.NewResult("run", act)
	res.Window = w
	res.Desktop = d
	res.Wrapped = wrapped
	res.Sent = true
	return res
}

func TestNotice(t *testing.T) {
	tests := []struct {
		name string
		res  *models.Result
		want string
	}{
		{"next window", result(types.WindowNext, 0x01000003, 0, false),
			"Activating next Window ID: 0x01000003 on Desktop ID: 0"},
		{"prev window", result(types.WindowPrev, 0x01000001, 1, false),
			"Activating prev Window ID: 0x01000001 on Desktop ID: 1"},
		{"window wrap", result(types.WindowNext, 0x01000001, 0, true),
			"Restarting from Window ID: 0x01000001 on Desktop ID: 0"},
		{"next desktop", result(types.DesktopNext, 0, 2, false),
			"Activating next Desktop ID: 2"},
		{"prev desktop", result(types.DesktopPrev, 0, 0, false),
			"Activating prev Desktop ID: 0"},
		{"next desktop wrap", result(types.DesktopNext, 0, 0, true),
			"Restarting from Desktop ID: 0"},
		{"prev desktop wrap", result(types.DesktopPrev, 0, 2, true),
			"Restarting Desktop ID: 2"},
		{"skipped", models.NewResult("run", types.WindowNext).Skip("no active window"),
			"Nothing to activate on Desktop ID: 0 (no active window)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Notice(tt.res); got != tt.want {
				t.Errorf("Notice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinterReport(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out, Err: &out}

	p.Report(result(types.WindowNext, 0x01000003, 0, false))
	if got := out.String(); got != "Activating next Window ID: 0x01000003 on Desktop ID: 0\n" {
		t.Errorf("Report() wrote %q", got)
	}
}

func TestPrinterReportJSON(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out, Err: &out, JSON: true}

	p.Report(result(types.DesktopPrev, 0, 2, true))
	got := out.String()
	for _, want := range []string{`"action": "prev-desktop"`, `"desktop": 2`, `"wrapped": true`, `"sent": true`, `"runId": "run"`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON output missing %s:\n%s", want, got)
		}
	}
	if strings.Contains(got, `"window"`) {
		t.Errorf("desktop result should omit the window:\n%s", got)
	}
}

func TestPrinterFail(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &Printer{Out: &out, Err: &errOut}

	p.Fail(types.WindowPrev, errors.New("cannot open display"))
	if got := errOut.String(); got != "Error: prev-window: cannot open display\n" {
		t.Errorf("Fail() wrote %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("Fail() wrote to stdout: %q", out.String())
	}
}

func TestPrintWorkspaceTable(t *testing.T) {
	var out bytes.Buffer
	report := &models.WorkspaceReport{
		Desktop: 0,
		Active:  0x01000002,
		Windows: []models.WindowRow{
			{Index: 0, Window: 0x01000001, Title: "xterm"},
			{Index: 1, Window: 0x01000002, Title: "editor", Active: true},
		},
	}

	PrintWorkspaceTable(&out, report, 80)
	got := out.String()
	for _, want := range []string{"0x01000001", "0x01000002", "xterm", "editor", "*"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestPrintDesktopTable(t *testing.T) {
	var out bytes.Buffer
	PrintDesktopTable(&out, &models.DesktopReport{Current: 2, Count: 4, Source: "_NET_CURRENT_DESKTOP"})

	got := out.String()
	for _, want := range []string{"2", "4", "_NET_CURRENT_DESKTOP"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestPrintYAML(t *testing.T) {
	var out bytes.Buffer
	if err := PrintYAML(&out, &models.DesktopReport{Current: 1, Count: 3}); err != nil {
		t.Fatalf("PrintYAML() error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "current: 1") || !strings.Contains(got, "count: 3") {
		t.Errorf("PrintYAML() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer window title", 10, "a longe..."},
		{"äöüäöüäöü", 5, "äö..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"", "table", "json", "yaml"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error: %v", s, err)
		}
	}
	if f, _ := ParseFormat(""); f != FormatTable {
		t.Errorf("ParseFormat(\"\") = %q, want table", f)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\") expected error")
	}
}
