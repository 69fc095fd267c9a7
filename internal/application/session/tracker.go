// Package session tracks active learning sessions. Time advancement is
// explicit: the caller (a scheduler in production, the test harness in
// tests) invokes Tick once per elapsed learning minute, so there is no
// internal timer and no hidden control flow.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// MinuteRecorder commits one measured learning minute to the ledger.
type MinuteRecorder interface {
	Execute(ctx context.Context, input ledger.RecordLearningTimeInput) (*ledger.RecordLearningTimeOutput, error)
}

// Session is one active learning session for a (child, app) pair.
type Session struct {
	ParentID         uuid.UUID
	ChildID          uuid.UUID
	AppID            string
	StartedAt        time.Time
	MinutesCommitted int
}

type sessionKey struct {
	childID uuid.UUID
	appID   string
}

// Tracker holds the active sessions. Ending a session stops further ticks;
// minutes already committed through the ledger are never rolled back.
type Tracker struct {
	mu       sync.Mutex
	sessions map[sessionKey]*Session
	recorder MinuteRecorder
	clock    adapter.Clock
}

// NewTracker creates a new session tracker.
func NewTracker(recorder MinuteRecorder, clock adapter.Clock) *Tracker {
	return &Tracker{
		sessions: make(map[sessionKey]*Session),
		recorder: recorder,
		clock:    clock,
	}
}

// Start opens a session for the child and app.
func (t *Tracker) Start(parentID, childID uuid.UUID, appID string) (*Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := sessionKey{childID: childID, appID: appID}
	if _, ok := t.sessions[key]; ok {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeSessionAlreadyActive,
			"learning session already active",
			domainerror.ErrSessionAlreadyActive,
		)
	}

	s := &Session{
		ParentID:  parentID,
		ChildID:   childID,
		AppID:     appID,
		StartedAt: t.clock.Now(),
	}
	t.sessions[key] = s

	return s, nil
}

// Tick commits one elapsed learning minute for an active session. Ticks for
// a session that was ended are rejected.
func (t *Tracker) Tick(ctx context.Context, childID uuid.UUID, appID string) (*ledger.RecordLearningTimeOutput, error) {
	t.mu.Lock()
	s, ok := t.sessions[sessionKey{childID: childID, appID: appID}]
	t.mu.Unlock()
	if !ok {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeSessionNotFound,
			"no active learning session",
			domainerror.ErrSessionNotFound,
		)
	}

	output, err := t.recorder.Execute(ctx, ledger.RecordLearningTimeInput{
		ParentID: s.ParentID,
		ChildID:  s.ChildID,
		AppID:    s.AppID,
		Minutes:  1,
	})
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	s.MinutesCommitted++
	t.mu.Unlock()

	return output, nil
}

// End closes a session and returns its final state. The committed minutes
// stay in the ledger.
func (t *Tracker) End(childID uuid.UUID, appID string) (*Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := sessionKey{childID: childID, appID: appID}
	s, ok := t.sessions[key]
	if !ok {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeSessionNotFound,
			"no active learning session",
			domainerror.ErrSessionNotFound,
		)
	}

	delete(t.sessions, key)
	return s, nil
}

// Active lists the child's open sessions.
func (t *Tracker) Active(childID uuid.UUID) []*Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []*Session
	for key, s := range t.sessions {
		if key.childID == childID {
			out = append(out, s)
		}
	}
	return out
}
