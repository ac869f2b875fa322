package stream

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/telemetrykit/ewmafilter/pkg/ewma"
)

// EwmaStream feeds every value emitted by a source through a float64 EWMA
// filter and re-emits the updated average, so it can itself serve as the
// source of a downstream stage. Range subscribers additionally receive the
// fading envelope after each accepted sample.
type EwmaStream struct {
	Float64Updater

	rangeCallbacks []func(r ewma.Range[float64])

	filter *ewma.Float[float64]
}

var _ Float64Source = (*EwmaStream)(nil)

func Ewma(source Float64Source, alpha float64) *EwmaStream {
	s := &EwmaStream{
		filter: ewma.NewFloat(alpha),
	}
	source.OnUpdate(s.calculateAndPush)
	return s
}

// EwmaDefault binds a filter weighted with ewma.DefaultAlpha.
func EwmaDefault(source Float64Source) *EwmaStream {
	return Ewma(source, ewma.DefaultAlpha)
}

func (s *EwmaStream) calculateAndPush(v float64) {
	// a NaN or infinite sample would poison the average and the envelope
	// permanently, so drop it before it reaches the filter
	if math.IsNaN(v) || math.IsInf(v, 0) {
		log.Warnf("ewma stream: dropping non-finite sample %v", v)
		return
	}

	avg := s.filter.PushSample(v)
	s.EmitUpdate(avg)
	s.EmitRangeUpdate(s.filter.LocalRange())
}

func (s *EwmaStream) Average() float64 {
	return s.filter.Average()
}

func (s *EwmaStream) LocalRange() ewma.Range[float64] {
	return s.filter.LocalRange()
}

func (s *EwmaStream) OnRangeUpdate(cb func(r ewma.Range[float64])) {
	s.rangeCallbacks = append(s.rangeCallbacks, cb)
}

func (s *EwmaStream) EmitRangeUpdate(r ewma.Range[float64]) {
	for _, cb := range s.rangeCallbacks {
		cb(r)
	}
}
