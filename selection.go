package pathsel

import (
	"fmt"

	"github.com/samber/lo"
)

// Mode describes how a freshly computed match set is combined with the
// selection that existed before.
type Mode int

const (
	// ModeReplace discards the previous selection.
	ModeReplace Mode = iota
	// ModeAdd selects the union of both sets.
	ModeAdd
	// ModeSubtract deselects the matches from the previous selection.
	ModeSubtract
)

func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeAdd:
		return "add"
	case ModeSubtract:
		return "subtract"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the names returned by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "replace":
		return ModeReplace, nil
	case "add":
		return ModeAdd, nil
	case "subtract":
		return ModeSubtract, nil
	default:
		return 0, fmt.Errorf("%w: unknown selection mode %q", ErrConfiguration, s)
	}
}

// Reconcile computes the selection that results from applying match to
// current under mode. Duplicates are removed; ids keep the order of their
// first occurrence, matches before the previous selection.
func Reconcile(mode Mode, match, current []string) []string {
	var out []string
	switch mode {
	case ModeAdd:
		out = lo.Union(match, current)
	case ModeSubtract:
		out = lo.Uniq(lo.Without(current, match...))
	default:
		out = lo.Uniq(match)
	}
	if out == nil {
		out = []string{}
	}
	return out
}
