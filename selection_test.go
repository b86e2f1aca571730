package pathsel

import (
	"errors"
	"testing"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		mode           Mode
		match, current []string
		want           []string
	}{
		{ModeReplace, []string{"a", "b"}, []string{"c"}, []string{"a", "b"}},
		{ModeReplace, []string{"a", "a"}, nil, []string{"a"}},
		{ModeReplace, nil, []string{"c"}, []string{}},
		{ModeAdd, []string{"a"}, []string{"b", "c"}, []string{"a", "b", "c"}},
		{ModeAdd, []string{"a", "b"}, []string{"b", "c"}, []string{"a", "b", "c"}},
		{ModeAdd, nil, nil, []string{}},
		{ModeSubtract, []string{"a"}, []string{"a", "b"}, []string{"b"}},
		{ModeSubtract, []string{"x"}, []string{"a", "b"}, []string{"a", "b"}},
		{ModeSubtract, []string{"a", "b"}, []string{"a", "b"}, []string{}},
		{ModeSubtract, nil, []string{"b", "b", "c"}, []string{"b", "c"}},
	}
	for _, tt := range tests {
		got := Reconcile(tt.mode, tt.match, tt.current)
		diff(t, tt.want, got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeReplace, ModeAdd, ModeSubtract} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMode("toggle"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("got %v, want configuration error", err)
	}
	if s := Mode(7).String(); s != "Mode(7)" {
		t.Errorf("got %q", s)
	}
}
