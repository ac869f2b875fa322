package ewma

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// DefaultAlpha is the weighting factor used by NewFloatDefault. Its fade
// rate matches the integer-mode default ratio of
// DefaultAlphaNumerator/DefaultAlphaDenominator.
const DefaultAlpha = 0.01

// Float tracks the average and the fading extrema of a series of floating
// point samples. A bigger alpha causes faster fade of old values.
//
// Weights outside (0, 1) are not rejected here; use NewFloatChecked when the
// weight comes from untrusted input.
type Float[T constraints.Float] struct {
	// number of samples that have been pushed through the filter, only
	// consulted to detect the seeding case
	sampleCount int

	// recent minimum value (not global minimum)
	localMin T
	// recent maximum value (not global maximum)
	localMax T

	average T
	alpha   T
}

var _ Filter[float64] = (*Float[float64])(nil)

func NewFloat[T constraints.Float](alpha T) *Float[T] {
	return &Float[T]{alpha: alpha}
}

// NewFloatDefault returns a filter weighted with DefaultAlpha.
func NewFloatDefault[T constraints.Float]() *Float[T] {
	return NewFloat(T(DefaultAlpha))
}

// NewFloatChecked rejects weights outside (0, 1) instead of letting them
// produce a diverging or frozen average.
func NewFloatChecked[T constraints.Float](alpha T) (*Float[T], error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, errors.Errorf("ewma: alpha %v is out of range (0, 1)", alpha)
	}

	return NewFloat(alpha), nil
}

// PushSample feeds the next sample in the series into the filter and returns
// the updated average.
func (f *Float[T]) PushSample(newValue T) T {
	if f.sampleCount == 0 {
		// seed the filter so a single-sample stream already yields a stable
		// average and a centered envelope
		f.localMin = newValue
		f.localMax = newValue
		f.average = newValue
	} else {
		f.average += f.alpha * (newValue - f.average)

		// extrema snap to a genuinely new extreme, otherwise fade toward the
		// sample while it sits between the updated average and the old bound
		if newValue > f.localMax {
			f.localMax = newValue
		} else if newValue > f.average {
			f.localMax += f.alpha * (newValue - f.localMax)
		}

		if newValue < f.localMin {
			f.localMin = newValue
		} else if newValue < f.average {
			f.localMin += f.alpha * (newValue - f.localMin)
		}
	}
	f.sampleCount++

	return f.average
}

func (f *Float[T]) Average() T {
	return f.average
}

func (f *Float[T]) LocalRange() Range[T] {
	return Range[T]{Min: f.localMin, Max: f.localMax}
}
