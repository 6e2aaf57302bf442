// Package env implements envelope generator nodes.
//
// Both envelopes operate in one of two modes, selected from the configured
// duration when the node starts playing. With a positive duration the
// envelope is a pure function of elapsed time and runs attack, optional
// decay/sustain, then release against the duration boundary. With a zero
// duration the envelope is gated: it holds its attack/sustain value until
// Stop is called, then releases from the value it reached and deactivates
// itself once the release completes.
package env

import (
	"fmt"
)

type options struct {
	attack   float64
	decay    float64
	sustain  float64
	release  float64
	duration float64
}

// Option configures an envelope node at construction.
type Option func(*options)

// WithAttack sets the attack time in seconds. Non-positive values are
// ignored in favor of the default.
func WithAttack(seconds float64) Option {
	return func(o *options) {
		if seconds > 0 {
			o.attack = seconds
		}
	}
}

// WithDecay sets the decay time in seconds (ADSR only).
func WithDecay(seconds float64) Option {
	return func(o *options) {
		if seconds > 0 {
			o.decay = seconds
		}
	}
}

// WithSustain sets the sustain level in [0, 1] (ADSR only).
func WithSustain(level float64) Option {
	return func(o *options) {
		if level >= 0 && level <= 1 {
			o.sustain = level
		}
	}
}

// WithRelease sets the release time in seconds.
func WithRelease(seconds float64) Option {
	return func(o *options) {
		if seconds > 0 {
			o.release = seconds
		}
	}
}

// WithDur sets the total envelope duration in seconds. Zero selects gated
// mode; that is also the default.
func WithDur(seconds float64) Option {
	return func(o *options) {
		if seconds >= 0 {
			o.duration = seconds
		}
	}
}

func validTime(name string, seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("env: %s must be >= 0, got %v", name, seconds)
	}

	return nil
}
