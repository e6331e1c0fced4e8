package property

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/mbroemme/fbctrl/internal/types"
)

// WordSize is the size of one format-32 property item
const WordSize = 4

// DecodeCardinal reads the first 32-bit word of a property value
func DecodeCardinal(b []byte) (uint32, error) {
	if len(b) < WordSize {
		return 0, fmt.Errorf("%w: %d bytes, need %d", ErrShortValue, len(b), WordSize)
	}
	return xgb.Get32(b), nil
}

// DecodeDesktop reads a single desktop index
func DecodeDesktop(b []byte) (types.Desktop, error) {
	v, err := DecodeCardinal(b)
	return types.Desktop(v), err
}

// DecodeWindow reads a single window handle
func DecodeWindow(b []byte) (types.Window, error) {
	v, err := DecodeCardinal(b)
	return types.Window(v), err
}

// DecodeWindows reads a homogeneous array of window handles.
// An empty value is an empty list.
func DecodeWindows(b []byte) ([]types.Window, error) {
	if len(b)%WordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrShortValue, len(b))
	}
	out := make([]types.Window, len(b)/WordSize)
	for i := range out {
		out[i] = types.Window(xgb.Get32(b[i*WordSize:]))
	}
	return out, nil
}

// EncodeWords packs values into a property value the way DecodeWindows
// and DecodeCardinal expect them
func EncodeWords(values ...uint32) []byte {
	b := make([]byte, len(values)*WordSize)
	for i, v := range values {
		xgb.Put32(b[i*WordSize:], v)
	}
	return b
}
