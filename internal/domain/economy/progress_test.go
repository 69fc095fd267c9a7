package economy

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

func newTestGoal(target, bonus int) *entity.Goal {
	start := testTime.AddDate(0, 0, -1)
	end := testTime.AddDate(0, 0, 6)
	return entity.NewGoal(uuid.New(), "Math week", target, bonus, []string{"com.example.mathly"}, start, end)
}

func TestUpdateProgressCompletesOnce(t *testing.T) {
	g := newTestGoal(50, 20)

	steps := []struct {
		earned        int
		wantProgress  int
		wantCompleted bool
	}{
		{earned: 20, wantProgress: 20, wantCompleted: false},
		{earned: 20, wantProgress: 40, wantCompleted: false},
		{earned: 20, wantProgress: 60, wantCompleted: true},
		{earned: 20, wantProgress: 80, wantCompleted: false},
	}

	for i, step := range steps {
		completedNow := UpdateProgress(g, "com.example.mathly", step.earned, testTime)
		if completedNow != step.wantCompleted {
			t.Errorf("step %d: completedNow = %v, want %v", i, completedNow, step.wantCompleted)
		}
		if g.Progress != step.wantProgress {
			t.Errorf("step %d: Progress = %d, want %d", i, g.Progress, step.wantProgress)
		}
	}

	if !g.IsCompleted {
		t.Error("IsCompleted = false after passing target")
	}
}

func TestUpdateProgressNoOps(t *testing.T) {
	tests := []struct {
		name   string
		modify func(g *entity.Goal)
		appID  string
		earned int
	}{
		{name: "inactive goal", modify: func(g *entity.Goal) { g.IsActive = false }, appID: "com.example.mathly", earned: 10},
		{name: "expired goal", modify: func(g *entity.Goal) { g.EndDate = testTime.AddDate(0, 0, -1) }, appID: "com.example.mathly", earned: 10},
		{name: "ineligible app", modify: func(g *entity.Goal) {}, appID: "com.example.other", earned: 10},
		{name: "zero earned", modify: func(g *entity.Goal) {}, appID: "com.example.mathly", earned: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGoal(50, 20)
			tt.modify(g)

			if UpdateProgress(g, tt.appID, tt.earned, testTime) {
				t.Error("completedNow = true, want false")
			}
			if g.Progress != 0 {
				t.Errorf("Progress = %d, want 0", g.Progress)
			}
		})
	}
}

func TestUpdateProgressExactTarget(t *testing.T) {
	g := newTestGoal(50, 20)

	if UpdateProgress(g, "com.example.mathly", 50, testTime) != true {
		t.Error("completion must fire when progress exactly reaches target")
	}
}

func TestGoalIsExpired(t *testing.T) {
	g := newTestGoal(50, 0)

	if g.IsExpired(g.EndDate) {
		t.Error("goal expired exactly at end date, want not expired")
	}
	if !g.IsExpired(g.EndDate.Add(time.Second)) {
		t.Error("goal not expired after end date")
	}
}
