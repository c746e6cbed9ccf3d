package timeq_test

import (
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/timeq"
	"github.com/stretchr/testify/assert"
)

func TestTimerScheduler(t *testing.T) {
	t.Run("Fires", func(t *testing.T) {
		s := timeq.New()
		done := make(chan struct{})
		s.Schedule(time.Millisecond, func() { close(done) })

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduled task never ran")
		}
	})

	t.Run("Cancel", func(t *testing.T) {
		s := timeq.New()
		fired := make(chan struct{}, 1)
		cancel := s.Schedule(50*time.Millisecond, func() { fired <- struct{}{} })
		cancel()

		select {
		case <-fired:
			t.Fatal("cancelled task ran")
		case <-time.After(100 * time.Millisecond):
		}
		assert.Len(t, fired, 0)
	})
}
