// Package stream binds the ewma filters into callback-driven float64
// pipelines: a source emits samples, subscribers receive the smoothed
// values. All callbacks run synchronously on the pushing goroutine.
package stream

// Float64Source emits float64 values to registered subscribers.
type Float64Source interface {
	OnUpdate(cb func(v float64))
}

// Float64Updater is the basic fan-out building block. It can stand alone as
// a pushable source, and filter stages embed it to re-emit their outputs.
type Float64Updater struct {
	updateCallbacks []func(v float64)
}

func (u *Float64Updater) OnUpdate(cb func(v float64)) {
	u.updateCallbacks = append(u.updateCallbacks, cb)
}

func (u *Float64Updater) EmitUpdate(v float64) {
	for _, cb := range u.updateCallbacks {
		cb(v)
	}
}
