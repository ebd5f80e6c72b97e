package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MemoryStore is a process-local Store. Expired entries are dropped lazily
// on read and periodically by a sweeper goroutine; when maxEntries is
// reached the entry closest to expiry is evicted.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	maxEntries int
	now        func() time.Time
	logger     *slog.Logger

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryStore creates a memory store. maxEntries <= 0 means unbounded;
// sweepInterval <= 0 disables the background sweeper.
func NewMemoryStore(maxEntries int, sweepInterval time.Duration, logger *slog.Logger) *MemoryStore {
	return newMemoryStore(maxEntries, sweepInterval, time.Now, logger)
}

func newMemoryStore(maxEntries int, sweepInterval time.Duration, now func() time.Time, logger *slog.Logger) *MemoryStore {
	s := &MemoryStore{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        now,
		logger:     logger.With("component", "memory-store"),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	if sweepInterval > 0 {
		go s.sweepLoop(sweepInterval)
	} else {
		close(s.done)
	}
	return s
}

func (s *MemoryStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateTTL(ttl); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.removeExpired(now)
		if len(s.entries) >= s.maxEntries {
			s.evictSoonestExpiring()
		}
	}

	// Copy so callers can't mutate stored bytes
	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = memoryEntry{value: stored, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		// Re-check: the key may have been rewritten since the read lock
		if current, ok := s.entries[key]; ok && !s.now().Before(current.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet swept
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the sweeper. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
	return nil
}

// Sweep removes all expired entries and returns how many were removed
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeExpired(s.now())
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("swept expired entries", "count", n)
			}
		}
	}
}

// removeExpired must be called while holding s.mu
func (s *MemoryStore) removeExpired(now time.Time) int {
	removed := 0
	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// evictSoonestExpiring must be called while holding s.mu
func (s *MemoryStore) evictSoonestExpiring() {
	var (
		victim   string
		earliest time.Time
		found    bool
	)
	for key, entry := range s.entries {
		if !found || entry.expiresAt.Before(earliest) {
			victim, earliest, found = key, entry.expiresAt, true
		}
	}
	if found {
		delete(s.entries, victim)
		s.logger.Warn("store full, evicted entry", "key", victim, "max_entries", s.maxEntries)
	}
}
