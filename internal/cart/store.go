package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/robfig/cron/v3"
)

type entry struct {
	mu       sync.Mutex
	cart     *Cart
	lastSeen time.Time
}

// Store holds one cart per visitor session. Carts idle for longer than the
// session TTL are dropped by Sweep.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	ttl       time.Duration
	now       func() time.Time
	scheduler *cron.Cron
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// With runs fn holding the session's cart exclusively, creating an empty
// cart on first use.
func (s *Store) With(sessionID string, fn func(c *Cart) error) error {
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	if !ok {
		e = &entry{cart: New()}
		s.sessions[sessionID] = e
	}
	e.lastSeen = s.now()
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.cart)
}

// Discard forgets a session's cart, the same as a page reload.
func (s *Store) Discard(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes carts whose session has been idle past the TTL and returns
// how many were removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Sweeper is other per-session state dropped on the cart sweep schedule.
type Sweeper interface {
	Sweep() int
}

// StartSweeper runs Sweep, then each of others, on the given cron spec
// until Stop is called.
func (s *Store) StartSweeper(spec string, others ...Sweeper) error {
	scheduler := cron.New(cron.WithSeconds())
	if _, err := scheduler.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 {
			logger.Info(fmt.Sprintf("Scheduler: dropped %d idle carts", n))
		}
		for _, other := range others {
			if n := other.Sweep(); n > 0 {
				logger.Info(fmt.Sprintf("Scheduler: dropped %d idle session entries", n))
			}
		}
	}); err != nil {
		return fmt.Errorf("invalid cart sweep spec %q: %w", spec, err)
	}
	scheduler.Start()

	s.mu.Lock()
	s.scheduler = scheduler
	s.mu.Unlock()

	logger.Info(fmt.Sprintf("Cart sweeper initialized with spec '%s' and idle timeout %v", spec, s.ttl))
	return nil
}

func (s *Store) Stop() {
	s.mu.Lock()
	scheduler := s.scheduler
	s.scheduler = nil
	s.mu.Unlock()

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
}
