package env

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// Fader generates a linear fade-in / fade-out envelope: a ramp 0→1 over the
// attack time, a hold at 1, and a ramp back to 0 over the release time. A
// zero attack or release makes the corresponding ramp a caller error, see
// the package documentation for the two operating modes.
type Fader struct {
	graph.Stream

	attack   float64
	release  float64
	duration float64

	timed       bool
	releasing   bool
	topValue    float64
	currentTime float64
	sampleToSec float64
}

// NewFader creates a fader envelope. Defaults: attack 0.01 s, release
// 0.1 s, duration 0 (gated mode).
func NewFader(cfg core.ProcessorConfig, opts ...Option) *Fader {
	o := options{attack: 0.01, release: 0.1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	f := &Fader{
		Stream:   graph.NewStream(cfg),
		attack:   o.attack,
		release:  o.release,
		duration: o.duration,
	}
	f.sampleToSec = 1 / f.SampleRate()
	f.resolveMode()

	return f
}

// resolveMode selects the timed or gated kernel from the configured
// duration. Invoked at construction and on every Play.
func (f *Fader) resolveMode() {
	f.timed = f.duration > 0
}

// Play restarts the envelope from its attack phase and activates the node.
func (f *Fader) Play() {
	f.releasing = false
	f.currentTime = 0
	f.resolveMode()
	f.Stream.Play()
}

// Stop ends the envelope. In timed mode the node deactivates immediately
// and its output is zeroed; in gated mode the release phase starts from the
// envelope's current value.
func (f *Fader) Stop() {
	if f.duration == 0 {
		f.releasing = true
		f.currentTime = 0
		return
	}

	f.Deactivate()
}

// SetFadein sets the attack time in seconds.
func (f *Fader) SetFadein(seconds float64) error {
	if err := validTime("fadein", seconds); err != nil {
		return err
	}

	f.attack = seconds

	return nil
}

// SetFadeout sets the release time in seconds.
func (f *Fader) SetFadeout(seconds float64) error {
	if err := validTime("fadeout", seconds); err != nil {
		return err
	}

	f.release = seconds

	return nil
}

// SetDur sets the total duration in seconds. Zero selects gated mode. The
// new mode takes effect at the next Play.
func (f *Fader) SetDur(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("env: dur must be >= 0, got %v", seconds)
	}

	f.duration = seconds

	return nil
}

// ComputeNextBlock advances the envelope by one block.
func (f *Fader) ComputeNextBlock() {
	if !f.Active() {
		return
	}

	finished := false
	if f.timed {
		f.generateTimed()
	} else {
		finished = f.generateGated()
	}

	f.PostProcess()

	if finished {
		f.Deactivate()
	}
}

func (f *Fader) generateTimed() {
	out := f.Block()

	for i := range out {
		var val float64

		switch {
		case f.currentTime <= f.attack:
			val = f.currentTime / f.attack
		case f.currentTime > f.duration:
			val = 0
		case f.currentTime >= f.duration-f.release:
			val = (f.duration - f.currentTime) / f.release
		default:
			val = 1
		}

		out[i] = val
		f.currentTime += f.sampleToSec
	}
}

func (f *Fader) generateGated() bool {
	out := f.Block()

	for i := range out {
		var val float64

		if !f.releasing {
			if f.currentTime <= f.attack {
				val = f.currentTime / f.attack
			} else {
				val = 1
			}
			f.topValue = val
		} else {
			if f.currentTime <= f.release {
				val = (1 - f.currentTime/f.release) * f.topValue
			} else {
				val = 0
			}
		}

		out[i] = val
		f.currentTime += f.sampleToSec
	}

	return f.releasing && f.currentTime > f.release
}
