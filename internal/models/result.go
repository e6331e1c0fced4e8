package models

import (
	"github.com/mbroemme/fbctrl/internal/types"
)

// Result describes one executed action
type Result struct {
	RunID  string       `json:"runId" yaml:"runId"`
	Action string       `json:"action" yaml:"action"`
	Kind   types.Action `json:"-" yaml:"-"`
	// Desktop is the active desktop for window actions and the
	// requested desktop for desktop actions
	Desktop types.Desktop `json:"desktop" yaml:"desktop"`
	// Window is the window asked to activate, window actions only
	Window  types.Window `json:"window,omitempty" yaml:"window,omitempty"`
	Wrapped bool         `json:"wrapped" yaml:"wrapped"`
	Sent    bool         `json:"sent" yaml:"sent"`
	// Reason explains why no message was sent
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// NewResult creates a result for the given run and action
func NewResult(runID string, action types.Action) *Result {
	return &Result{
		RunID:  runID,
		Action: action.String(),
		Kind:   action,
	}
}

// Skip marks the result as not sent with the given reason
func (r *Result) Skip(reason string) *Result {
	r.Sent = false
	r.Reason = reason
	return r
}

// WindowRow is one window of the active desktop as listed by `fbctrl list`
type WindowRow struct {
	Index  int          `json:"index" yaml:"index"`
	Window types.Window `json:"window" yaml:"window"`
	Title  string       `json:"title" yaml:"title"`
	Active bool         `json:"active" yaml:"active"`
}

// WorkspaceReport is the output of `fbctrl list`
type WorkspaceReport struct {
	Desktop types.Desktop `json:"desktop" yaml:"desktop"`
	Active  types.Window  `json:"active,omitempty" yaml:"active,omitempty"`
	Windows []WindowRow   `json:"windows" yaml:"windows"`
}

// DesktopReport is the output of `fbctrl desktops`
type DesktopReport struct {
	Current types.Desktop `json:"current" yaml:"current"`
	Count   uint32        `json:"count" yaml:"count"`
	Source  string        `json:"source,omitempty" yaml:"source,omitempty"`
}
