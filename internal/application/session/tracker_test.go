package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeRecorder struct {
	calls []ledger.RecordLearningTimeInput
	err   error
}

func (r *fakeRecorder) Execute(_ context.Context, input ledger.RecordLearningTimeInput) (*ledger.RecordLearningTimeOutput, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.calls = append(r.calls, input)
	return &ledger.RecordLearningTimeOutput{}, nil
}

func TestTrackerTickCommitsOneMinute(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewTracker(recorder, &fakeClock{now: time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)})
	parentID, childID := uuid.New(), uuid.New()

	if _, err := tracker.Start(parentID, childID, "com.example.mathly"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := tracker.Tick(context.Background(), childID, "com.example.mathly"); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	if len(recorder.calls) != 3 {
		t.Fatalf("recorder calls = %d, want 3", len(recorder.calls))
	}
	for _, call := range recorder.calls {
		if call.Minutes != 1 || call.AppID != "com.example.mathly" || call.ParentID != parentID {
			t.Errorf("unexpected earn input: %+v", call)
		}
	}
}

func TestTrackerEndStopsTicksButKeepsMinutes(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewTracker(recorder, &fakeClock{now: time.Now()})
	childID := uuid.New()

	if _, err := tracker.Start(uuid.New(), childID, "app"); err != nil {
		t.Fatal(err)
	}
	if _, err := tracker.Tick(context.Background(), childID, "app"); err != nil {
		t.Fatal(err)
	}

	s, err := tracker.End(childID, "app")
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if s.MinutesCommitted != 1 {
		t.Errorf("MinutesCommitted = %d, want 1", s.MinutesCommitted)
	}

	if _, err := tracker.Tick(context.Background(), childID, "app"); !errors.Is(err, domainerror.ErrSessionNotFound) {
		t.Errorf("Tick() after End error = %v, want ErrSessionNotFound", err)
	}
	// The committed minute stays committed.
	if len(recorder.calls) != 1 {
		t.Errorf("recorder calls = %d, want 1", len(recorder.calls))
	}
}

func TestTrackerDuplicateStart(t *testing.T) {
	tracker := NewTracker(&fakeRecorder{}, &fakeClock{now: time.Now()})
	childID := uuid.New()

	if _, err := tracker.Start(uuid.New(), childID, "app"); err != nil {
		t.Fatal(err)
	}
	if _, err := tracker.Start(uuid.New(), childID, "app"); !errors.Is(err, domainerror.ErrSessionAlreadyActive) {
		t.Errorf("second Start() error = %v, want ErrSessionAlreadyActive", err)
	}
}

func TestTrackerFailedTickDoesNotCount(t *testing.T) {
	recorder := &fakeRecorder{err: domainerror.ErrAppNotConfigured}
	tracker := NewTracker(recorder, &fakeClock{now: time.Now()})
	childID := uuid.New()

	if _, err := tracker.Start(uuid.New(), childID, "app"); err != nil {
		t.Fatal(err)
	}
	if _, err := tracker.Tick(context.Background(), childID, "app"); err == nil {
		t.Fatal("Tick() error = nil, want error")
	}

	s, err := tracker.End(childID, "app")
	if err != nil {
		t.Fatal(err)
	}
	if s.MinutesCommitted != 0 {
		t.Errorf("MinutesCommitted = %d, want 0", s.MinutesCommitted)
	}
}
