package service

import "time"

// SetNow pins the store clock for deterministic notification ids in tests.
func (s *Store) SetNow(now func() time.Time) {
	s.now = now
}
