// Package handoff passes a computed selection to a running Inkscape over the
// D-Bus session bus.
//
// Inkscape exports its actions through the org.gtk.Actions interface. The
// selection is replaced by clearing it and then selecting the given ids, so
// the ids passed to [Conn.Apply] must already be reconciled with the
// previous selection (see pathsel.Reconcile).
package handoff

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
)

const (
	// BusName is the well-known bus name of the Inkscape application.
	BusName = "org.inkscape.Inkscape"
	// ApplicationPath is the object exporting application-level actions.
	ApplicationPath dbus.ObjectPath = "/org/inkscape/Inkscape"

	activateMethod = "org.gtk.Actions.Activate"

	// ActionSelectClear empties the selection.
	ActionSelectClear = "select-clear"
	// ActionSelectByID adds the comma separated ids to the selection.
	ActionSelectByID = "select-by-id"
)

// maxRetries bounds the attempts per action after the first one.
const maxRetries = 5

// An Activator triggers named actions of the host application.
type Activator interface {
	Activate(ctx context.Context, action string, params ...any) error
}

type busActivator struct {
	obj dbus.BusObject
}

func (a busActivator) Activate(ctx context.Context, action string, params ...any) error {
	vs := make([]dbus.Variant, len(params))
	for i, p := range params {
		vs[i] = dbus.MakeVariant(p)
	}
	call := a.obj.CallWithContext(ctx, activateMethod, 0, action, vs, map[string]dbus.Variant{})
	return call.Err
}

// Conn is a handle on the host application. It is acquired with [Dial] or
// [New] and must be released with [Conn.Close].
type Conn struct {
	act    Activator
	closer io.Closer
	log    logrus.FieldLogger

	newBackOff func() backoff.BackOff
}

// Dial connects to the session bus and returns a handle on the Inkscape
// instance registered there.
func Dial(ctx context.Context, log logrus.FieldLogger) (*Conn, error) {
	bus, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	c := New(busActivator{obj: bus.Object(BusName, ApplicationPath)}, log)
	c.closer = bus
	return c, nil
}

// New returns a handle that triggers actions through act. Closing it does
// not affect act.
func New(act Activator, log logrus.FieldLogger) *Conn {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Conn{
		act: act,
		log: log,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			return b
		},
	}
}

// Close releases the bus connection.
func (c *Conn) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}

// Apply makes ids the host's selection, after waiting for delay. An empty
// ids clears the selection.
func (c *Conn) Apply(ctx context.Context, ids []string, delay time.Duration) error {
	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if err := c.activate(ctx, ActionSelectClear); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return c.activate(ctx, ActionSelectByID, strings.Join(ids, ","))
}

func (c *Conn) activate(ctx context.Context, action string, params ...any) error {
	op := func() error {
		return c.act.Activate(ctx, action, params...)
	}
	notify := func(err error, wait time.Duration) {
		c.log.WithFields(logrus.Fields{
			"action": action,
			"wait":   wait,
		}).WithError(err).Warn("host action failed, retrying")
	}
	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), maxRetries), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return fmt.Errorf("activating %s: %w", action, err)
	}
	c.log.WithField("action", action).Debug("host action activated")
	return nil
}
