package models

import (
	"sync"
	"time"
)

// TimerMode selects between counting elapsed time up and counting a
// configured limit down.
type TimerMode string

const (
	TimerCountUp   TimerMode = "countup"
	TimerCountDown TimerMode = "countdown"
)

// SessionState is a snapshot of the running quiz session.
type SessionState struct {
	Active    bool
	SessionID string
	Group     string
	Position  int
	Total     int
	Score     int
	Answered  int
	StartTime time.Time
	Elapsed   time.Duration
	Remaining time.Duration
	Mode      TimerMode
}

// SessionStateRepository holds the session snapshot shared between the
// timer goroutine, the services, and the UI. Safe for concurrent use.
type SessionStateRepository struct {
	mu    sync.RWMutex
	state SessionState
}

// NewSessionStateRepository creates an inactive session state repository.
func NewSessionStateRepository() *SessionStateRepository {
	return &SessionStateRepository{}
}

// State returns the current snapshot.
func (r *SessionStateRepository) State() SessionState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// StartSession resets the snapshot for a new quiz run.
func (r *SessionStateRepository) StartSession(sessionID, group string, total int, mode TimerMode, limit time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = SessionState{
		Active:    true,
		SessionID: sessionID,
		Group:     group,
		Position:  1,
		Total:     total,
		StartTime: time.Now(),
		Remaining: limit,
		Mode:      mode,
	}
}

// UpdateProgress records question position, score, and answered count.
func (r *SessionStateRepository) UpdateProgress(position, score, answered int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Active {
		r.state.Position = position
		r.state.Score = score
		r.state.Answered = answered
	}
}

// UpdateClock records the timer values published by the clock goroutine.
func (r *SessionStateRepository) UpdateClock(elapsed, remaining time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Active {
		r.state.Elapsed = elapsed
		r.state.Remaining = remaining
	}
}

// CompleteSession marks the session inactive, keeping the final values
// readable until the next run starts.
func (r *SessionStateRepository) CompleteSession() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Active = false
}

// IsActive reports whether a session is running.
func (r *SessionStateRepository) IsActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Active
}
