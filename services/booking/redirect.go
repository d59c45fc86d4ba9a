package booking

import (
	"sync"
	"time"
)

// Redirector schedules the automatic return to home after a confirmation.
type Redirector interface {
	Schedule(sessionID string, after time.Duration, fire func())
	Cancel(sessionID string) bool
}

// TimerRedirector keeps one timer per session.
type TimerRedirector struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewTimerRedirector returns an idle redirector.
func NewTimerRedirector() *TimerRedirector {
	return &TimerRedirector{timers: make(map[string]*time.Timer)}
}

// Schedule runs fire once after the delay unless the session is canceled
// first. Scheduling again for the same session replaces the earlier timer.
func (r *TimerRedirector) Schedule(sessionID string, after time.Duration, fire func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[sessionID]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(after, func() {
		r.mu.Lock()
		current, ok := r.timers[sessionID]
		if !ok || current != t {
			r.mu.Unlock()
			return
		}
		delete(r.timers, sessionID)
		r.mu.Unlock()
		fire()
	})
	r.timers[sessionID] = t
}

// Cancel stops a pending redirect. It reports whether one was pending.
func (r *TimerRedirector) Cancel(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.timers[sessionID]
	if !ok {
		return false
	}
	delete(r.timers, sessionID)
	t.Stop()
	return true
}

// Pending reports how many redirects are scheduled.
func (r *TimerRedirector) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Stop cancels every pending redirect.
func (r *TimerRedirector) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
}
