// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation when a grid
	// is adopted by New.
	DefaultValidateNaNInf = true

	// DefaultTolerance is the absolute per-element tolerance used by
	// EqualApprox when callers have no better bound ("close enough").
	DefaultTolerance = 1e-4
)

const panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; callers use
// the WithX constructors.
type Options struct {
	validateNaNInf bool    // reject NaN/±Inf on ingestion
	tol            float64 // absolute tolerance for approximate comparisons
}

// WithValidateNaNInf enables rejection of NaN/±Inf values in New (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value check in New.
// NaN/Inf then propagate through arithmetic per IEEE-754.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance sets the absolute tolerance used by approximate comparison.
// Panics if tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the finite-value policy is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Tolerance returns the configured comparison tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		tol:            DefaultTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
