package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMemoryStore(t *testing.T, maxEntries int) (*MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newMemoryStore(maxEntries, 0, clock.Now, discardLogger())
	t.Cleanup(func() { _ = s.Close() })
	return s, clock
}

func TestMemoryStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestMemoryStore(t, 0)

	value := []byte(`{"id":"abc"}`)
	require.NoError(t, s.Put(ctx, "abc", value, time.Hour))

	// Mutating the caller's slice must not change the stored value
	value[0] = 'X'

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"abc"}`, string(got))

	got[0] = 'Y'
	again, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"abc"}`, string(again))
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s, _ := newTestMemoryStore(t, 0)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestMemoryStore(t, 0)

	require.NoError(t, s.Put(ctx, "short", []byte("a"), time.Minute))
	require.NoError(t, s.Put(ctx, "long", []byte("b"), time.Hour))

	clock.Advance(time.Minute - time.Nanosecond)
	_, err := s.Get(ctx, "short")
	require.NoError(t, err)

	clock.Advance(time.Nanosecond)
	_, err = s.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Len(), "expired entry should be removed on read")

	_, err = s.Get(ctx, "long")
	assert.NoError(t, err)
}

func TestMemoryStore_PutOverwritesTTL(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestMemoryStore(t, 0)

	require.NoError(t, s.Put(ctx, "k", []byte("v1"), time.Minute))
	clock.Advance(50 * time.Second)
	require.NoError(t, s.Put(ctx, "k", []byte("v2"), time.Minute))
	clock.Advance(50 * time.Second)

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestMemoryStore_InvalidTTL(t *testing.T) {
	s, _ := newTestMemoryStore(t, 0)

	for _, ttl := range []time.Duration{0, -time.Second} {
		err := s.Put(context.Background(), "k", []byte("v"), ttl)
		assert.ErrorIs(t, err, ErrInvalidTTL)
	}
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestMemoryStore(t, 0)

	require.NoError(t, s.Put(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "never-existed"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestMemoryStore(t, 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Put(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Duration(i+1)*time.Minute))
	}

	clock.Advance(3 * time.Minute)
	assert.Equal(t, 3, s.Sweep())
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStore_EvictsAtCapacity(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestMemoryStore(t, 3)

	require.NoError(t, s.Put(ctx, "a", []byte("a"), 3*time.Hour))
	require.NoError(t, s.Put(ctx, "b", []byte("b"), 1*time.Hour))
	require.NoError(t, s.Put(ctx, "c", []byte("c"), 2*time.Hour))

	// Full: "b" expires first and is evicted
	require.NoError(t, s.Put(ctx, "d", []byte("d"), 4*time.Hour))
	assert.Equal(t, 3, s.Len())
	_, err := s.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)

	// Overwriting an existing key never evicts
	require.NoError(t, s.Put(ctx, "a", []byte("a2"), time.Hour))
	assert.Equal(t, 3, s.Len())

	// Expired entries are reclaimed before live ones are evicted
	clock.Advance(90 * time.Minute)
	require.NoError(t, s.Put(ctx, "e", []byte("e"), time.Hour))
	for _, key := range []string{"c", "d", "e"} {
		_, err := s.Get(ctx, key)
		assert.NoError(t, err, key)
	}
}

func TestMemoryStore_SweeperRemovesExpired(t *testing.T) {
	s := NewMemoryStore(0, 10*time.Millisecond, discardLogger())
	defer s.Close()

	require.NoError(t, s.Put(context.Background(), "k", []byte("v"), 20*time.Millisecond))

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_CloseIdempotent(t *testing.T) {
	s := NewMemoryStore(0, time.Hour, discardLogger())

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestMemoryStore(t, 50)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("w%d-%d", w, i)
				_ = s.Put(ctx, key, []byte(key), time.Hour)
				_, _ = s.Get(ctx, key)
				if i%3 == 0 {
					_ = s.Delete(ctx, key)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 50)
}
