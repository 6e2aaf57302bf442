package env

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// ADSR generates a linear attack/decay/sustain/release envelope. In timed
// mode the sustain plateau ends release seconds before the duration
// boundary; in gated mode the envelope holds after decay until Stop starts
// the release from the current value.
type ADSR struct {
	graph.Stream

	attack   float64
	decay    float64
	sustain  float64
	release  float64
	duration float64

	timed       bool
	releasing   bool
	topValue    float64
	currentTime float64
	sampleToSec float64
}

// NewADSR creates an ADSR envelope. Defaults: attack 0.01 s, decay 0.05 s,
// sustain 0.707, release 0.1 s, duration 0 (gated mode).
func NewADSR(cfg core.ProcessorConfig, opts ...Option) *ADSR {
	o := options{attack: 0.01, decay: 0.05, sustain: 0.707, release: 0.1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	a := &ADSR{
		Stream:   graph.NewStream(cfg),
		attack:   o.attack,
		decay:    o.decay,
		sustain:  o.sustain,
		release:  o.release,
		duration: o.duration,
	}
	a.sampleToSec = 1 / a.SampleRate()
	a.resolveMode()

	return a
}

func (a *ADSR) resolveMode() {
	a.timed = a.duration > 0
}

// Play restarts the envelope from its attack phase and activates the node.
func (a *ADSR) Play() {
	a.releasing = false
	a.currentTime = 0
	a.resolveMode()
	a.Stream.Play()
}

// Stop ends the envelope. Timed mode deactivates immediately; gated mode
// releases from the current envelope value.
func (a *ADSR) Stop() {
	if a.duration == 0 {
		a.releasing = true
		a.currentTime = 0
		return
	}

	a.Deactivate()
}

// SetAttack sets the attack time in seconds.
func (a *ADSR) SetAttack(seconds float64) error {
	if err := validTime("attack", seconds); err != nil {
		return err
	}

	a.attack = seconds

	return nil
}

// SetDecay sets the decay time in seconds.
func (a *ADSR) SetDecay(seconds float64) error {
	if err := validTime("decay", seconds); err != nil {
		return err
	}

	a.decay = seconds

	return nil
}

// SetSustain sets the sustain level. Values outside [0, 1] are rejected.
func (a *ADSR) SetSustain(level float64) error {
	if level < 0 || level > 1 {
		return fmt.Errorf("env: sustain must be in [0, 1], got %v", level)
	}

	a.sustain = level

	return nil
}

// SetRelease sets the release time in seconds.
func (a *ADSR) SetRelease(seconds float64) error {
	if err := validTime("release", seconds); err != nil {
		return err
	}

	a.release = seconds

	return nil
}

// SetDur sets the total duration in seconds. Zero selects gated mode. The
// new mode takes effect at the next Play.
func (a *ADSR) SetDur(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("env: dur must be >= 0, got %v", seconds)
	}

	a.duration = seconds

	return nil
}

// ComputeNextBlock advances the envelope by one block.
func (a *ADSR) ComputeNextBlock() {
	if !a.Active() {
		return
	}

	finished := false
	if a.timed {
		a.generateTimed()
	} else {
		finished = a.generateGated()
	}

	a.PostProcess()

	if finished {
		a.Deactivate()
	}
}

func (a *ADSR) generateTimed() {
	out := a.Block()

	for i := range out {
		var val float64

		switch {
		case a.currentTime <= a.attack:
			val = a.currentTime / a.attack
		case a.currentTime <= a.attack+a.decay:
			val = (a.decay-(a.currentTime-a.attack))/a.decay*(1-a.sustain) + a.sustain
		case a.currentTime > a.duration:
			val = 0
		case a.currentTime >= a.duration-a.release:
			val = (a.duration - a.currentTime) / a.release * a.sustain
		default:
			val = a.sustain
		}

		out[i] = val
		a.currentTime += a.sampleToSec
	}
}

func (a *ADSR) generateGated() bool {
	out := a.Block()

	for i := range out {
		var val float64

		if !a.releasing {
			switch {
			case a.currentTime <= a.attack:
				val = a.currentTime / a.attack
			case a.currentTime <= a.attack+a.decay:
				val = (a.decay-(a.currentTime-a.attack))/a.decay*(1-a.sustain) + a.sustain
			default:
				val = a.sustain
			}
			a.topValue = val
		} else {
			if a.currentTime <= a.release {
				val = a.topValue * (1 - a.currentTime/a.release)
			} else {
				val = 0
			}
		}

		out[i] = val
		a.currentTime += a.sampleToSec
	}

	return a.releasing && a.currentTime > a.release
}
