package graph

// Param is a polymorphic node parameter: either a bound constant scalar or
// a read-only view into another node's output stream. The zero value is the
// constant 0.
type Param struct {
	scalar float64
	src    SignalSource
}

// C binds a constant scalar.
func C(value float64) Param {
	return Param{scalar: value}
}

// Sig binds a signal source. A nil source degenerates to the constant 0.
func Sig(src SignalSource) Param {
	return Param{src: src}
}

// IsSignal reports whether the parameter is signal-driven. This is the
// binding tag the mode resolvers switch on.
func (p Param) IsSignal() bool { return p.src != nil }

// Scalar returns the bound constant. Meaningful only when IsSignal is false.
func (p Param) Scalar() float64 { return p.scalar }

// Block returns the bound source's current block. Meaningful only when
// IsSignal is true.
func (p Param) Block() []float64 { return p.src.Block() }

// Rate identifies which of a node's two polymorphic parameters are
// signal-driven for the next tick. The first letter refers to the first
// parameter: a = audio (signal), i = constant.
type Rate int

const (
	RateII Rate = iota
	RateAI
	RateIA
	RateAA
)

// ResolveRate derives the kernel variant from two binding tags. It is a
// pure function of the tags and must be re-evaluated after any setter that
// changes a binding.
func ResolveRate(first, second Param) Rate {
	switch {
	case first.IsSignal() && second.IsSignal():
		return RateAA
	case first.IsSignal():
		return RateAI
	case second.IsSignal():
		return RateIA
	default:
		return RateII
	}
}
