package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/engr-razib/BrandingAssetGenerator/internal/batch"
	"github.com/engr-razib/BrandingAssetGenerator/internal/metrics"
)

// ErrSuperseded is returned when a batch id no longer matches the
// session's visible batch.
var ErrSuperseded = errors.New("batch is no longer visible")

type Session struct {
	Key          string
	Batch        *batch.Batch
	LastActivity time.Time
}

type Options struct {
	TTL         time.Duration
	MaxSessions int
	Now         func() time.Time
}

// Store keeps the currently visible batch per visitor (browser cookie or
// chat id). Putting a new batch supersedes the previous one.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

func NewStore(opts Options) *Store {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	maxSessions := opts.MaxSessions
	if maxSessions <= 0 {
		maxSessions = 1000
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Store{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         now,
	}
}

// Put makes b the visible batch for key.
func (s *Store) Put(key string, b *batch.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[key]; ok {
		sess.Batch = b
		sess.LastActivity = s.now()
		return
	}

	if len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.sessions[key] = &Session{Key: key, Batch: b, LastActivity: s.now()}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
}

// Current returns the visible batch for key, if any.
func (s *Store) Current(key string) (*batch.Batch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.liveLocked(key)
	if !ok || sess.Batch == nil {
		return nil, false
	}
	sess.LastActivity = s.now()
	return sess.Batch, true
}

// Lookup returns the visible batch for key only if its id is batchID.
func (s *Store) Lookup(key, batchID string) (*batch.Batch, error) {
	b, ok := s.Current(key)
	if !ok || b.ID != batchID {
		return nil, ErrSuperseded
	}
	return b, nil
}

func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, key)
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for key, sess := range s.sessions {
		if sess.LastActivity.Before(cutoff) {
			delete(s.sessions, key)
			removed++
		}
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return removed
}

// RunJanitor sweeps on every tick until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) liveLocked(key string) (*Session, bool) {
	sess, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.LastActivity) > s.ttl {
		delete(s.sessions, key)
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
		return nil, false
	}
	return sess, true
}

func (s *Store) evictOldestLocked() {
	var oldest *Session
	for _, sess := range s.sessions {
		if oldest == nil || sess.LastActivity.Before(oldest.LastActivity) {
			oldest = sess
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.Key)
	}
}
