package action

import (
	"fmt"

	"github.com/mbroemme/fbctrl/internal/types"
)

// ConnectionError is returned when the display cannot be opened
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot open display: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// SendError is returned when a client message cannot be delivered
type SendError struct {
	Message string
	Target  types.Window
	Err     error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("cannot send %s event to %s: %v", e.Message, e.Target, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
