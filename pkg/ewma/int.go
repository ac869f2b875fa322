package ewma

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Default weighting ratio used by NewIntDefault, chosen to match the fade
// rate of the float-mode DefaultAlpha.
const (
	DefaultAlphaNumerator   = 1
	DefaultAlphaDenominator = 100
)

// Int tracks the average and the fading extrema of a series of integer
// samples, weighting each update by alphaNum/alphaDen instead of a
// fractional alpha so that no floating point arithmetic is needed.
//
// Every weighted step multiplies before the truncating divide to keep
// precision for small differences; the truncation biases each fade increment
// toward zero, so the integer mode fades slightly slower than exact rational
// arithmetic would. Differences are computed in T itself, so unsigned
// instantiations wrap once a sample falls below the current average, and
// alphaNum*(newValue-average) can overflow for extreme magnitudes.
type Int[T constraints.Integer] struct {
	// number of samples that have been pushed through the filter, only
	// consulted to detect the seeding case
	sampleCount int

	// recent minimum value (not global minimum)
	localMin T
	// recent maximum value (not global maximum)
	localMax T

	average T

	alphaNum T
	alphaDen T
}

var _ Filter[int64] = (*Int[int64])(nil)
var _ Filter[uint32] = (*Int[uint32])(nil)

func NewInt[T constraints.Integer](alphaNum, alphaDen T) *Int[T] {
	return &Int[T]{alphaNum: alphaNum, alphaDen: alphaDen}
}

// NewIntDefault returns a filter weighted with the default 1/100 ratio.
func NewIntDefault[T constraints.Integer]() *Int[T] {
	return NewInt(T(DefaultAlphaNumerator), T(DefaultAlphaDenominator))
}

// NewIntChecked rejects a zero denominator and ratios outside (0, 1), the
// two misuses that otherwise surface as a runtime fault or a diverging
// average.
func NewIntChecked[T constraints.Integer](alphaNum, alphaDen T) (*Int[T], error) {
	if alphaDen == 0 {
		return nil, errors.New("ewma: alpha denominator must not be zero")
	}

	if alphaNum <= 0 || alphaDen < 0 || alphaNum >= alphaDen {
		return nil, errors.Errorf("ewma: alpha ratio %v/%v is out of range (0, 1)", alphaNum, alphaDen)
	}

	return NewInt(alphaNum, alphaDen), nil
}

// PushSample feeds the next sample in the series into the filter and returns
// the updated average.
func (f *Int[T]) PushSample(newValue T) T {
	if f.sampleCount == 0 {
		// seed the filter so a single-sample stream already yields a stable
		// average and a centered envelope
		f.localMin = newValue
		f.localMax = newValue
		f.average = newValue
	} else {
		f.average += (f.alphaNum * (newValue - f.average)) / f.alphaDen

		// extrema snap to a genuinely new extreme, otherwise fade toward the
		// sample while it sits between the updated average and the old bound
		if newValue > f.localMax {
			f.localMax = newValue
		} else if newValue > f.average {
			f.localMax += (f.alphaNum * (newValue - f.localMax)) / f.alphaDen
		}

		if newValue < f.localMin {
			f.localMin = newValue
		} else if newValue < f.average {
			f.localMin += (f.alphaNum * (newValue - f.localMin)) / f.alphaDen
		}
	}
	f.sampleCount++

	return f.average
}

func (f *Int[T]) Average() T {
	return f.average
}

func (f *Int[T]) LocalRange() Range[T] {
	return Range[T]{Min: f.localMin, Max: f.localMax}
}
