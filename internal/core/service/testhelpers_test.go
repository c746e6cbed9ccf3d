package service_test

import (
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/require"
)

type memBlob struct {
	m map[string][]byte
}

func newMemBlob() *memBlob {
	return &memBlob{m: make(map[string][]byte)}
}

func (b *memBlob) Get(key string) ([]byte, bool, error) {
	v, ok := b.m[key]
	return v, ok, nil
}

func (b *memBlob) Set(key string, value []byte) error {
	b.m[key] = value
	return nil
}

func (b *memBlob) Remove(key string) error {
	delete(b.m, key)
	return nil
}

type scheduledTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

// manualScheduler records tasks instead of arming timers, so tests drive
// virtual time by firing them explicitly.
type manualScheduler struct {
	tasks []*scheduledTask
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) func() {
	task := &scheduledTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

func (s *manualScheduler) fireAll() {
	for _, task := range s.tasks {
		if !task.cancelled {
			task.fn()
		}
	}
	s.tasks = nil
}

const (
	testPageSize = 12
	testTTL      = 5 * time.Second
)

func newTestStore(
	t *testing.T, blob *memBlob, sched *manualScheduler,
) *service.Store {
	t.Helper()
	s, err := service.NewStore(
		service.StoreConfig{PageSize: testPageSize, NotificationTTL: testTTL},
		blob, sched,
	)
	require.NoError(t, err)
	return s
}

func storeHeadphones() domain.Product {
	return domain.Product{
		ID: 1, Name: "Wireless Headphones", Brand: "AudioTech",
		Category: "electronics", Price: 10, OriginalPrice: 20,
	}
}

func storeChargingPad() domain.Product {
	return domain.Product{
		ID: 2, Name: "Charging Pad", Brand: "ChargeTech",
		Category: "electronics", Price: 5, OriginalPrice: 5,
	}
}
