// Package refresh decides when a section shown again after being hidden
// holds stale data and should be reloaded.
package refresh

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	SectionInventory = "inventory"
	SectionMakeSale  = "make-sale"

	// Threshold is how old a section's data may get before it is reloaded.
	Threshold = 5 * time.Minute
)

var ErrUnknownSection = errors.New("unknown refresh section")

type Tracker struct {
	mu        sync.Mutex
	sessions  map[string]map[string]time.Time
	threshold time.Duration
	idle      time.Duration
	now       func() time.Time
}

// NewTracker keeps per session refresh times. Sessions untouched for idle
// are dropped by Sweep.
func NewTracker(threshold, idle time.Duration) *Tracker {
	return &Tracker{
		sessions:  make(map[string]map[string]time.Time),
		threshold: threshold,
		idle:      idle,
		now:       time.Now,
	}
}

func known(section string) bool {
	return section == SectionInventory || section == SectionMakeSale
}

// Due reports whether section was last refreshed more than the threshold
// ago, or never. A due section is recorded as refreshed now.
func (t *Tracker) Due(sessionID, section string) (bool, error) {
	if !known(section) {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	sections, ok := t.sessions[sessionID]
	if !ok {
		sections = make(map[string]time.Time)
		t.sessions[sessionID] = sections
	}
	last, seen := sections[section]
	if seen && now.Sub(last) <= t.threshold {
		return false, nil
	}
	sections[section] = now
	return true, nil
}

// Mark records a refresh made by the visitor, such as a manual reload.
func (t *Tracker) Mark(sessionID, section string) {
	if !known(section) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	sections, ok := t.sessions[sessionID]
	if !ok {
		sections = make(map[string]time.Time)
		t.sessions[sessionID] = sections
	}
	sections[section] = t.now()
}

// Sweep drops sessions whose newest refresh is older than the idle limit.
func (t *Tracker) Sweep() int {
	cutoff := t.now().Add(-t.idle)

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, sections := range t.sessions {
		stale := true
		for _, last := range sections {
			if !last.Before(cutoff) {
				stale = false
				break
			}
		}
		if stale {
			delete(t.sessions, id)
			removed++
		}
	}
	return removed
}
