package property

import (
	"errors"
	"testing"

	"github.com/mbroemme/fbctrl/internal/types"
)

func TestDecodeCardinal(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    uint32
		wantErr bool
	}{
		{"zero", EncodeWords(0), 0, false},
		{"little endian", []byte{0x01, 0x02, 0x00, 0x00}, 0x0201, false},
		{"extra words ignored", EncodeWords(7, 9), 7, false},
		{"all desktops", EncodeWords(0xFFFFFFFF), 0xFFFFFFFF, false},
		{"empty", nil, 0, true},
		{"short", []byte{1, 2, 3}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCardinal(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrShortValue) {
					t.Errorf("DecodeCardinal() err = %v, want ErrShortValue", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeCardinal() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeCardinal() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestDecodeWindows(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []types.Window
		wantErr bool
	}{
		{"empty list", []byte{}, []types.Window{}, false},
		{"single", EncodeWords(0x01400003), []types.Window{0x01400003}, false},
		{"order kept", EncodeWords(30, 10, 20), []types.Window{30, 10, 20}, false},
		{"partial word", []byte{1, 0, 0, 0, 2}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeWindows(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("DecodeWindows() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeWindows() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeWindows() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("DecodeWindows()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeWindowAndDesktop(t *testing.T) {
	w, err := DecodeWindow(EncodeWords(0x00a00004))
	if err != nil || w != 0x00a00004 {
		t.Errorf("DecodeWindow() = %v, %v", w, err)
	}

	d, err := DecodeDesktop(EncodeWords(3))
	if err != nil || d != 3 {
		t.Errorf("DecodeDesktop() = %v, %v", d, err)
	}

	if _, err := DecodeWindow(nil); err == nil {
		t.Error("DecodeWindow(nil) expected error")
	}
}
