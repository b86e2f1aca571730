package handoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type call struct {
	Action string
	Params []any
}

type fakeActivator struct {
	calls []call
	// fail makes the first fail calls return errHost.
	fail int
}

var errHost = errors.New("no such name")

func (f *fakeActivator) Activate(ctx context.Context, action string, params ...any) error {
	f.calls = append(f.calls, call{action, params})
	if len(f.calls) <= f.fail {
		return errHost
	}
	return nil
}

func newTestConn(act Activator, log logrus.FieldLogger) *Conn {
	c := New(act, log)
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return c
}

func TestApply(t *testing.T) {
	act := &fakeActivator{}
	c := newTestConn(act, nil)
	if err := c.Apply(context.Background(), []string{"rect1", "path2"}, 0); err != nil {
		t.Fatal(err)
	}
	want := []call{
		{ActionSelectClear, nil},
		{ActionSelectByID, []any{"rect1,path2"}},
	}
	if d := cmp.Diff(want, act.calls); d != "" {
		t.Error(d)
	}
}

func TestApplyEmpty(t *testing.T) {
	act := &fakeActivator{}
	c := newTestConn(act, nil)
	if err := c.Apply(context.Background(), nil, 0); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]call{{ActionSelectClear, nil}}, act.calls); d != "" {
		t.Error(d)
	}
}

func TestApplyRetries(t *testing.T) {
	log, hook := test.NewNullLogger()
	act := &fakeActivator{fail: 2}
	c := newTestConn(act, log)
	if err := c.Apply(context.Background(), []string{"a"}, 0); err != nil {
		t.Fatal(err)
	}
	if len(act.calls) != 4 {
		t.Errorf("got %d calls, want 4", len(act.calls))
	}
	var warnings int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("got %d warnings, want 2", warnings)
	}
}

func TestApplyGivesUp(t *testing.T) {
	act := &fakeActivator{fail: 100}
	c := newTestConn(act, nil)
	err := c.Apply(context.Background(), []string{"a"}, 0)
	if !errors.Is(err, errHost) {
		t.Fatalf("got %v, want %v", err, errHost)
	}
	if len(act.calls) != maxRetries+1 {
		t.Errorf("got %d calls, want %d", len(act.calls), maxRetries+1)
	}
}

func TestApplyDelayCanceled(t *testing.T) {
	act := &fakeActivator{}
	c := newTestConn(act, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Apply(ctx, []string{"a"}, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if len(act.calls) != 0 {
		t.Errorf("host was called %d times", len(act.calls))
	}
}

type closeCounter int

func (c *closeCounter) Close() error { *c++; return nil }

func TestClose(t *testing.T) {
	c := New(&fakeActivator{}, nil)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	var n closeCounter
	c.closer = &n
	c.Close()
	c.Close()
	if n != 1 {
		t.Errorf("closer called %d times, want 1", n)
	}
}
