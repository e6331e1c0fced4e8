// Package action runs the navigation actions selected on the command line.
// Each action opens its own connection, reads window manager state once,
// sends at most one client message and closes the connection again.
package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mbroemme/fbctrl/internal/desktop"
	"github.com/mbroemme/fbctrl/internal/focus"
	"github.com/mbroemme/fbctrl/internal/logging"
	"github.com/mbroemme/fbctrl/internal/models"
	"github.com/mbroemme/fbctrl/internal/property"
	"github.com/mbroemme/fbctrl/internal/types"
	"github.com/mbroemme/fbctrl/internal/workspace"
)

const (
	// MsgActiveWindow asks the window manager to activate a window
	MsgActiveWindow = "_NET_ACTIVE_WINDOW"
	// MsgCurrentDesktop asks the window manager to switch desktops
	MsgCurrentDesktop = "_NET_CURRENT_DESKTOP"
)

// ErrNoAction is returned by RunAll when no action was requested
var ErrNoAction = errors.New("no action was given")

// Conn is an open window manager connection
type Conn interface {
	property.Reader
	property.Sender
	Root() types.Window
	Close() error
}

// Connector opens a new connection
type Connector func() (Conn, error)

// Reporter receives the outcome of every action run by RunAll
type Reporter interface {
	Report(res *models.Result)
	Fail(act types.Action, err error)
}

// Options is the immutable configuration of a dispatcher
type Options struct {
	// Actions run in order, each with its own connection
	Actions []types.Action
	// Quiet suppresses Report calls for successful actions
	Quiet bool
	// Table selects the property names state is read from
	Table property.Table
}

// Dispatcher runs actions against connections from a Connector
type Dispatcher struct {
	connect    Connector
	opts       Options
	enumerator *workspace.Enumerator
	resolver   *desktop.Resolver
}

// NewDispatcher creates a dispatcher
func NewDispatcher(connect Connector, opts Options) *Dispatcher {
	return &Dispatcher{
		connect:    connect,
		opts:       opts,
		enumerator: workspace.NewEnumerator(opts.Table),
		resolver:   desktop.NewResolver(opts.Table),
	}
}

// RunAll runs every configured action. A failing action does not stop the
// ones after it; all failures are returned joined.
func (d *Dispatcher) RunAll(ctx context.Context, rep Reporter) error {
	if len(d.opts.Actions) == 0 {
		return ErrNoAction
	}

	var errs []error
	for _, act := range d.opts.Actions {
		res, err := d.Run(ctx, act)
		if err != nil {
			rep.Fail(act, err)
			errs = append(errs, fmt.Errorf("%s: %w", act, err))
			continue
		}
		if !d.opts.Quiet {
			rep.Report(res)
		}
	}
	return errors.Join(errs...)
}

// Run executes a single action with its own connection. The connection is
// closed before Run returns, on success and failure alike.
func (d *Dispatcher) Run(ctx context.Context, act types.Action) (*models.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := models.NewResult(uuid.New().String(), act)
	log := logging.Logger.With().Str("action", act.String()).Str("run_id", res.RunID).Logger()

	log.Debug().Msg("open the X display")
	conn, err := d.connect()
	if err != nil {
		log.Error().Err(err).Msg("cannot open display")
		return res, &ConnectionError{Err: err}
	}
	defer func() {
		log.Debug().Msg("close the X display")
		if cerr := conn.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("closing display")
		}
	}()

	if act.IsDesktop() {
		err = d.switchDesktop(ctx, conn, act.Direction(), res)
	} else {
		err = d.switchWindow(ctx, conn, act.Direction(), res)
	}
	if err != nil {
		log.Error().Err(err).Msg("action failed")
		return res, err
	}

	if res.Sent {
		log.Info().Stringer("window", res.Window).Uint32("desktop", uint32(res.Desktop)).Bool("wrapped", res.Wrapped).Msg("message sent")
	} else {
		log.Info().Str("reason", res.Reason).Msg("nothing to switch to")
	}
	return res, nil
}

func (d *Dispatcher) switchWindow(ctx context.Context, conn Conn, dir types.Direction, res *models.Result) error {
	ws, err := d.enumerator.Enumerate(conn)
	if err != nil {
		return err
	}
	res.Desktop = ws.Desktop

	if len(ws.Windows) == 0 {
		res.Skip("no windows on active desktop")
		return nil
	}
	if !ws.HasActive {
		res.Skip("no active window")
		return nil
	}

	target, ok := focus.Cycle(ws.Windows, ws.Active, dir)
	if !ok {
		res.Skip("active window is not on the active desktop")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := conn.SendMessage(target.Value, MsgActiveWindow, 0); err != nil {
		return &SendError{Message: MsgActiveWindow, Target: target.Value, Err: err}
	}

	res.Window = target.Value
	res.Wrapped = target.Wrapped
	res.Sent = true
	return nil
}

func (d *Dispatcher) switchDesktop(ctx context.Context, conn Conn, dir types.Direction, res *models.Result) error {
	state, err := d.resolver.Resolve(conn)
	if err != nil {
		return err
	}
	res.Desktop = state.Current

	// the window manager would be asked for a desktop that does not
	// exist; nothing is sent instead
	if !state.Valid() {
		res.Skip(fmt.Sprintf("current desktop %d outside of %d desktops, not switching past the range", state.Current, state.Count))
		return nil
	}

	target, _ := focus.CycleRange(uint32(state.Current), state.Count, dir)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := conn.SendMessage(conn.Root(), MsgCurrentDesktop, target.Value); err != nil {
		return &SendError{Message: MsgCurrentDesktop, Target: conn.Root(), Err: err}
	}

	res.Desktop = types.Desktop(target.Value)
	res.Wrapped = target.Wrapped
	res.Sent = true
	return nil
}
