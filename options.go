package pathsel

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrConfiguration is wrapped by errors reporting unknown or out of
	// range options.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInput is wrapped by errors reporting an unusable reference path.
	ErrInput = errors.New("invalid input")
)

// Method chooses how candidates are related to the reference curve.
type Method string

const (
	// MethodTouching selects candidates the reference curve runs through
	// or near.
	MethodTouching Method = "touching"
	// MethodEnclosed selects candidates inside the closed reference curve.
	MethodEnclosed Method = "enclosed"
)

// TouchCriterion is the test used by [MethodTouching].
type TouchCriterion string

const (
	// TouchBoxCross matches if the curve passes through the candidate's
	// bounding box.
	TouchBoxCross TouchCriterion = "bounding_box_cross"
	// TouchBoxCenter matches if the curve passes near the center of the
	// candidate's bounding box.
	TouchBoxCenter TouchCriterion = "bounding_box_center"
)

// EncloseCriterion is the test used by [MethodEnclosed].
type EncloseCriterion string

const (
	// EncloseBoxCenter matches if the center of the candidate's bounding
	// box is inside the curve.
	EncloseBoxCenter EncloseCriterion = "bounding_box_center"
	// EncloseAllPoints matches if all four corners of the bounding box are
	// inside.
	EncloseAllPoints EncloseCriterion = "all_points"
	// EncloseAnyPoint matches if at least one corner is inside.
	EncloseAnyPoint EncloseCriterion = "any_point"
)

// DefaultSamples is the number of points sampled per segment by the
// touching tests.
const DefaultSamples = 200

// Options configures a [Selector].
type Options struct {
	// Method picks between touching and enclosed selection.
	Method Method
	// Touch is the criterion used for MethodTouching.
	Touch TouchCriterion
	// Enclose is the criterion used for MethodEnclosed.
	Enclose EncloseCriterion
	// Mode combines the matches with the current selection.
	Mode Mode

	// IncludeHidden keeps hidden and locked candidates.
	IncludeHidden bool
	// IncludeGroups keeps candidates of kind "g".
	IncludeGroups bool

	// SelectionTolerance is the slack, in document units, allowed by the
	// touching tests.
	SelectionTolerance float64
	// BezierTolerance is the convergence and merge tolerance of the
	// intersection solver.
	BezierTolerance float64
	// MaxIter is the number of Newton steps per seed.
	MaxIter int
	// Samples is the number of points sampled per segment by the touching
	// tests. It includes both end points.
	Samples int

	// Delay is waited before the selection is handed to the host.
	Delay time.Duration
	// Debug reports the result instead of handing it to the host.
	Debug bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Method:             MethodTouching,
		Touch:              TouchBoxCross,
		Enclose:            EncloseBoxCenter,
		Mode:               ModeReplace,
		SelectionTolerance: 0,
		BezierTolerance:    DefaultTolerance,
		MaxIter:            DefaultMaxIter,
		Samples:            DefaultSamples,
		Delay:              500 * time.Millisecond,
	}
}

// Solver returns the intersection solver described by opts.
func (opts Options) Solver() Solver {
	return Solver{Tolerance: opts.BezierTolerance, MaxIter: opts.MaxIter}
}

// Validate checks that every option has a recognized value.
func (opts Options) Validate() error {
	switch opts.Method {
	case MethodTouching:
		if _, err := ParseTouchCriterion(string(opts.Touch)); err != nil {
			return err
		}
	case MethodEnclosed:
		if _, err := ParseEncloseCriterion(string(opts.Enclose)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown method %q", ErrConfiguration, opts.Method)
	}
	if _, err := ParseMode(opts.Mode.String()); err != nil {
		return err
	}
	switch {
	case opts.Samples < 2:
		return fmt.Errorf("%w: samples must be at least 2, got %d", ErrConfiguration, opts.Samples)
	case !(opts.BezierTolerance > 0):
		return fmt.Errorf("%w: bezier tolerance must be positive, got %g", ErrConfiguration, opts.BezierTolerance)
	case opts.MaxIter <= 0:
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrConfiguration, opts.MaxIter)
	case opts.SelectionTolerance < 0:
		return fmt.Errorf("%w: selection tolerance must not be negative, got %g", ErrConfiguration, opts.SelectionTolerance)
	case opts.Delay < 0:
		return fmt.Errorf("%w: delay must not be negative, got %s", ErrConfiguration, opts.Delay)
	}
	return nil
}

// ParseMethod parses a method name such as "touching".
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodTouching, MethodEnclosed:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrConfiguration, s)
	}
}

// ParseTouchCriterion parses the name of a touching criterion.
func ParseTouchCriterion(s string) (TouchCriterion, error) {
	switch c := TouchCriterion(s); c {
	case TouchBoxCross, TouchBoxCenter:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown touching criterion %q", ErrConfiguration, s)
	}
}

// ParseEncloseCriterion parses the name of an enclosed criterion.
func ParseEncloseCriterion(s string) (EncloseCriterion, error) {
	switch c := EncloseCriterion(s); c {
	case EncloseBoxCenter, EncloseAllPoints, EncloseAnyPoint:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown enclosed criterion %q", ErrConfiguration, s)
	}
}
