// Package timeq provides a cancellable delayed-task facility that can be
// replaced with a manual implementation in tests.
package timeq

import "time"

type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

// New returns a Scheduler backed by the runtime timer.
func New() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
