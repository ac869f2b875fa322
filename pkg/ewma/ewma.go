// Package ewma implements an exponentially weighted moving average over a
// stream of samples, together with fading local minimum/maximum bounds that
// track recent extremes rather than all-time extremes.
//
// The filter comes in two numeric modes sharing one update algorithm: Float
// weights with a fractional alpha, Int emulates the fraction with an integer
// numerator/denominator ratio so it can run where floating point is
// unavailable or undesirable. Neither mode allocates on the push path.
package ewma

import "golang.org/x/exp/constraints"

// Number is the set of sample types the filter can track.
type Number interface {
	constraints.Integer | constraints.Float
}

// Filter is the common contract of the two engine modes. Implementations are
// value types selected at compile time; the interface is for callers that
// want to abstract over the numeric mode, not for the engines themselves.
//
// Calls must be serialized by the caller. The filter holds no lock.
type Filter[T Number] interface {
	// PushSample feeds the next sample in the series into the filter and
	// returns the updated exponentially weighted moving average.
	PushSample(newValue T) T

	// Average returns the cached exponentially weighted moving average.
	// Before the first PushSample call it is the zero value of T.
	Average() T

	// LocalRange returns the fading local minimum and maximum.
	LocalRange() Range[T]
}

// Range is the fading envelope around the average. The interval is half-open
// [Min, Max) by naming convention only; the filter never clamps a sample
// against Max, and a new sample may equal either bound.
type Range[T Number] struct {
	Min T
	Max T
}
