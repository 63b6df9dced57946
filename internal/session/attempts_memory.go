package session

import (
	"context"
	"sync"
	"time"
)

// attemptEntry tracks failed logins for one IP within the current window.
type attemptEntry struct {
	count     int
	windowEnd time.Time
}

// MemoryAttemptStore is the default in-process AttemptStore: a plain map
// guarded by a mutex, with a purge goroutine so IPs that never return do not
// accumulate forever.
type MemoryAttemptStore struct {
	mu       sync.Mutex
	entries  map[string]*attemptEntry
	maxFails int
	window   time.Duration
}

const purgeInterval = 5 * time.Minute

func NewMemoryAttemptStore(maxFails int, window time.Duration) *MemoryAttemptStore {
	s := &MemoryAttemptStore{
		entries:  make(map[string]*attemptEntry),
		maxFails: maxFails,
		window:   window,
	}
	go s.purgeLoop()
	return s
}

func (s *MemoryAttemptStore) Blocked(_ context.Context, ip string) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[ip]
	if !ok {
		return false, 0, nil
	}

	now := time.Now()
	if now.After(entry.windowEnd) {
		delete(s.entries, ip)
		return false, 0, nil
	}
	if entry.count >= s.maxFails {
		return true, entry.windowEnd.Sub(now), nil
	}
	return false, 0, nil
}

func (s *MemoryAttemptStore) RecordFailure(_ context.Context, ip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry, ok := s.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		s.entries[ip] = &attemptEntry{count: 1, windowEnd: now.Add(s.window)}
		return nil
	}
	entry.count++
	return nil
}

func (s *MemoryAttemptStore) Reset(_ context.Context, ip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, ip)
	return nil
}

func (s *MemoryAttemptStore) purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for ip, entry := range s.entries {
			if now.After(entry.windowEnd) {
				delete(s.entries, ip)
			}
		}
		s.mu.Unlock()
	}
}
