package trig

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// Distribution selects the value generator of an Xnoise node. All
// generators emit values clamped to [0, 1]; the meaning of the x1 and
// x2 parameters depends on the distribution.
type Distribution int

const (
	// DistUniform draws uniformly in [0, 1). No parameters.
	DistUniform Distribution = iota
	// DistLinearMin takes the minimum of two uniform draws.
	DistLinearMin
	// DistLinearMax takes the maximum of two uniform draws.
	DistLinearMax
	// DistTriangle averages two uniform draws.
	DistTriangle
	// DistExponMin is an exponential hugging 0. x1 is the slope.
	DistExponMin
	// DistExponMax is an exponential hugging 1. x1 is the slope.
	DistExponMax
	// DistBiexpon is a two-sided exponential around 0.5. x1 is the bandwidth.
	DistBiexpon
	// DistCauchy is a heavy-tailed spread around 0.5. x1 is the bandwidth.
	DistCauchy
	// DistWeibull uses x1 as locator and x2 as shape.
	DistWeibull
	// DistGauss approximates a normal law from six uniform draws.
	// x1 is the locator, x2 the bandwidth.
	DistGauss
	// DistPoisson draws from a discrete Poisson table. x1 is the gravity
	// center, x2 a compress/expand factor.
	DistPoisson
	// DistWalker is a bounded random walk. x1 is the maximum value,
	// x2 the maximum step.
	DistWalker
	// DistLoopseg records short random-walk segments and replays each a
	// random number of times. x1 is the maximum value, x2 the maximum step.
	DistLoopseg
)

func validDistribution(dist Distribution) error {
	if dist < DistUniform || dist > DistLoopseg {
		return fmt.Errorf("trig: invalid distribution %d", dist)
	}

	return nil
}

const poissonTableCap = 2000

// xdist is the mutable scratch state shared by the distribution
// generators. The parameter clamps write back into xx1/xx2, so a clamped
// value stays clamped until the next parameter refresh.
type xdist struct {
	rng *rand.Rand

	xx1 float64
	xx2 float64

	poissonTable  []float64
	lastPoissonX1 float64

	walkerValue   float64
	loopBuffer    [15]float64
	loopChoice    int
	loopCountPlay int
	loopCountRec  int
	loopTime      int
	loopStop      int
	loopLen       int
}

func newXdist(rng *rand.Rand) xdist {
	return xdist{
		rng:           rng,
		xx1:           0.5,
		xx2:           0.5,
		lastPoissonX1: -99,
		walkerValue:   0.5,
		loopLen:       rng.Intn(10) + 3,
	}
}

func (d *xdist) draw(dist Distribution) float64 {
	switch dist {
	case DistUniform:
		return d.rng.Float64()
	case DistLinearMin:
		return math.Min(d.rng.Float64(), d.rng.Float64())
	case DistLinearMax:
		return math.Max(d.rng.Float64(), d.rng.Float64())
	case DistTriangle:
		return (d.rng.Float64() + d.rng.Float64()) * 0.5
	case DistExponMin:
		return d.exponMin()
	case DistExponMax:
		return d.exponMax()
	case DistBiexpon:
		return d.biexpon()
	case DistCauchy:
		return d.cauchy()
	case DistWeibull:
		return d.weibull()
	case DistGauss:
		return d.gauss()
	case DistPoisson:
		return d.poisson()
	case DistWalker:
		return d.walker()
	case DistLoopseg:
		return d.loopseg()
	}

	panic("trig: unreachable distribution")
}

func (d *xdist) exponMin() float64 {
	if d.xx1 <= 0 {
		d.xx1 = 0.00001
	}

	return core.ClampUnit(-math.Log(d.rng.Float64()) / d.xx1)
}

func (d *xdist) exponMax() float64 {
	if d.xx1 <= 0 {
		d.xx1 = 0.00001
	}

	return core.ClampUnit(1 + math.Log(d.rng.Float64())/d.xx1)
}

func (d *xdist) biexpon() float64 {
	if d.xx1 <= 0 {
		d.xx1 = 0.00001
	}

	polar := 1.0
	sum := d.rng.Float64() * 2
	if sum > 1 {
		polar = -1
		sum = 2 - sum
	}

	return core.ClampUnit(0.5*(polar*math.Log(sum)/d.xx1) + 0.5)
}

func (d *xdist) cauchy() float64 {
	var rnd float64
	for {
		rnd = d.rng.Float64()
		if rnd != 0.5 {
			break
		}
	}

	dir := 1.0
	if d.rng.Intn(2) == 0 {
		dir = -1
	}

	return core.ClampUnit(0.5*(math.Tan(rnd)*d.xx1*dir) + 0.5)
}

func (d *xdist) weibull() float64 {
	if d.xx2 <= 0 {
		d.xx2 = 0.00001
	}

	rnd := 1 / (1 - d.rng.Float64())

	return core.ClampUnit(d.xx1 * math.Pow(math.Log(rnd), 1/d.xx2))
}

func (d *xdist) gauss() float64 {
	var rnd float64
	for range 6 {
		rnd += d.rng.Float64()
	}

	return core.ClampUnit(d.xx2*(rnd-3)*0.33 + d.xx1)
}

func (d *xdist) poisson() float64 {
	if d.xx1 < 0.1 {
		d.xx1 = 0.1
	}
	if d.xx2 < 0.1 {
		d.xx2 = 0.1
	}

	if d.xx1 != d.lastPoissonX1 {
		d.lastPoissonX1 = d.xx1
		d.poissonTable = d.poissonTable[:0]
		factorial := 1.0
		for i := 1; i < 12; i++ {
			factorial *= float64(i)
			tot := int(1000 * math.Exp(-d.xx1) * math.Pow(d.xx1, float64(i)) / factorial)
			for j := 0; j < tot && len(d.poissonTable) < poissonTableCap; j++ {
				d.poissonTable = append(d.poissonTable, float64(i))
			}
		}
	}

	// An extreme gravity center can leave every bucket empty.
	if len(d.poissonTable) == 0 {
		return core.ClampUnit(d.xx1 / 12 * d.xx2)
	}

	return core.ClampUnit(d.poissonTable[d.rng.Intn(len(d.poissonTable))] / 12 * d.xx2)
}

func (d *xdist) step() {
	if d.xx2 < 0.002 {
		d.xx2 = 0.002
	}

	modulo := int(d.xx2 * 1000)
	step := float64(d.rng.Intn(modulo)-modulo/2) * 0.001
	if d.rng.Intn(2) == 0 {
		d.walkerValue += step
	} else {
		d.walkerValue -= step
	}

	if d.walkerValue > d.xx1 {
		d.walkerValue = d.xx1
	}
	if d.walkerValue < 0 {
		d.walkerValue = 0
	}
}

func (d *xdist) walker() float64 {
	d.step()

	return d.walkerValue
}

func (d *xdist) loopseg() float64 {
	if d.loopChoice == 0 {
		d.loopCountPlay = 0
		d.loopTime = 0

		d.step()

		d.loopBuffer[d.loopCountRec] = d.walkerValue
		d.loopCountRec++

		if d.loopCountRec >= d.loopLen {
			d.loopChoice = 1
			d.loopStop = d.rng.Intn(4) + 1
		}
	} else {
		d.loopCountRec = 0

		d.walkerValue = d.loopBuffer[d.loopCountPlay]
		d.loopCountPlay++

		if d.loopCountPlay >= d.loopLen {
			d.loopCountPlay = 0
			d.loopTime++
		}

		if d.loopTime == d.loopStop {
			d.loopChoice = 0
			d.loopLen = d.rng.Intn(10) + 3
		}
	}

	return d.walkerValue
}

// Xnoise holds its output between triggers and, on each trigger, draws
// a fresh value from the selected distribution. An optional portamento
// ramps toward each new value instead of jumping.
type Xnoise struct {
	graph.Stream

	input graph.SignalSource
	x1    graph.Param
	x2    graph.Param
	dist  Distribution
	rate  graph.Rate

	d xdist
	g glide
}

// NewXnoise creates a triggered noise generator. Both distribution
// parameters default to the constant 0.5.
func NewXnoise(cfg core.ProcessorConfig, input graph.SignalSource, dist Distribution, opts ...Option) (*Xnoise, error) {
	if err := validDistribution(dist); err != nil {
		return nil, err
	}

	o := applyOptions(opts)

	x := &Xnoise{
		Stream: graph.NewStream(cfg),
		input:  input,
		x1:     graph.C(0.5),
		x2:     graph.C(0.5),
		dist:   dist,
		d:      newXdist(newRNG(o.seed)),
	}
	x.g.current = o.initial
	x.g.target = o.initial
	x.g.setRamp(o.port, x.SampleRate())
	x.resolveKernel()

	return x, nil
}

func (x *Xnoise) resolveKernel() {
	x.rate = graph.ResolveRate(x.x1, x.x2)
}

// SetX1 rebinds the first distribution parameter.
func (x *Xnoise) SetX1(p graph.Param) {
	x.x1 = p
	x.resolveKernel()
}

// SetX2 rebinds the second distribution parameter.
func (x *Xnoise) SetX2(p graph.Param) {
	x.x2 = p
	x.resolveKernel()
}

// SetDist switches the distribution. Scratch state carries over, so a
// walker keeps its position.
func (x *Xnoise) SetDist(dist Distribution) error {
	if err := validDistribution(dist); err != nil {
		return err
	}

	x.dist = dist

	return nil
}

// SetPort sets the portamento ramp time in seconds.
func (x *Xnoise) SetPort(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("trig: portamento time must be >= 0, got %v", seconds)
	}

	x.g.setRamp(seconds, x.SampleRate())

	return nil
}

// ComputeNextBlock advances the generator by one block.
func (x *Xnoise) ComputeNextBlock() {
	if !x.Active() {
		return
	}

	in := x.input.Block()
	out := x.Block()

	switch x.rate {
	case graph.RateII:
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x.x1.Scalar()
				x.d.xx2 = x.x2.Scalar()
				x.g.retarget(x.d.draw(x.dist))
			}
			out[i] = x.g.next()
		}

	case graph.RateAI:
		x1 := x.x1.Block()
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x1[i]
				x.d.xx2 = x.x2.Scalar()
				x.g.retarget(x.d.draw(x.dist))
			}
			out[i] = x.g.next()
		}

	case graph.RateIA:
		x2 := x.x2.Block()
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x.x1.Scalar()
				x.d.xx2 = x2[i]
				x.g.retarget(x.d.draw(x.dist))
			}
			out[i] = x.g.next()
		}

	case graph.RateAA:
		x1 := x.x1.Block()
		x2 := x.x2.Block()
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x1[i]
				x.d.xx2 = x2[i]
				x.g.retarget(x.d.draw(x.dist))
			}
			out[i] = x.g.next()
		}

	default:
		panic("trig: unreachable parameter rate")
	}

	x.PostProcess()
}
