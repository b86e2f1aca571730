package pathsel

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Input is everything a selection pass needs to know about the document.
type Input struct {
	// Reference is the decomposed reference path.
	Reference Curve
	// Closed reports whether the reference path is closed. It is required
	// by MethodEnclosed.
	Closed bool
	// Candidates are tested in order.
	Candidates []Candidate
	// Selection is the selection before this pass.
	Selection []string
}

// Result is the outcome of a selection pass.
type Result struct {
	// Matched holds the ids of the matching candidates, in candidate order.
	Matched []string
	// Final is Matched reconciled with the previous selection.
	Final []string
}

// Selector runs selection passes with fixed options.
type Selector struct {
	opts Options
	log  logrus.FieldLogger
}

// NewSelector returns a selector using opts. Diagnostics are written to log;
// a nil log discards them.
func NewSelector(opts Options, log logrus.FieldLogger) *Selector {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Selector{opts: opts, log: log}
}

// Select tests every candidate of in against the reference curve and
// reconciles the matches with the previous selection.
//
// Configuration and input errors abort the pass before any candidate is
// tested. The context is checked between candidates.
func (s *Selector) Select(ctx context.Context, in Input) (Result, error) {
	if err := s.opts.Validate(); err != nil {
		return Result{}, err
	}
	if len(in.Reference) == 0 {
		return Result{}, fmt.Errorf("%w: reference path has no segments", ErrInput)
	}
	if s.opts.Method == MethodEnclosed && !in.Closed {
		return Result{}, fmt.Errorf("%w: reference path must be closed for enclosed selection", ErrInput)
	}
	filter, err := NewFilter(s.opts, in.Reference)
	if err != nil {
		return Result{}, err
	}

	log := s.log.WithFields(logrus.Fields{
		"method":   s.opts.Method,
		"segments": len(in.Reference),
	})
	matched := []string{}
	var skipped int
	for _, cand := range in.Candidates {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if !s.opts.Considers(cand) {
			skipped++
			continue
		}
		if filter.Match(cand) {
			log.WithFields(logrus.Fields{"id": cand.ID, "box": cand.Box}).Debug("candidate matched")
			matched = append(matched, cand.ID)
		}
	}

	res := Result{
		Matched: matched,
		Final:   Reconcile(s.opts.Mode, matched, in.Selection),
	}
	log.WithFields(logrus.Fields{
		"candidates": len(in.Candidates),
		"skipped":    skipped,
		"matched":    len(res.Matched),
		"mode":       s.opts.Mode,
		"selected":   len(res.Final),
	}).Info("selection computed")
	return res, nil
}
