package economy

import (
	"reflect"
	"testing"
	"time"
)

func TestRolloverCarryover(t *testing.T) {
	yesterday := time.Date(2025, 3, 9, 20, 30, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	w := newTestWallet()
	w.Balance = 25
	w.TotalEarned = 30
	w.TotalSpent = 5
	w.DailyEarned = 10
	w.DailySpent = 5
	w.DailyLearningMinutes = 45
	w.TotalLearningMinutes = 300
	w.DailyRewardUsage = map[string]int{"com.example.blockcraft": 15}
	w.LastResetDate = yesterday

	if !RolloverIfNeeded(w, today) {
		t.Fatal("RolloverIfNeeded() = false, want rollover")
	}

	if w.Balance != 25 {
		t.Errorf("Balance = %d, want 25 (carryover)", w.Balance)
	}
	if w.TotalEarned != 30 || w.TotalSpent != 5 || w.TotalLearningMinutes != 300 {
		t.Error("lifetime counters must survive rollover")
	}
	if w.DailyEarned != 0 || w.DailySpent != 0 || w.DailyLearningMinutes != 0 {
		t.Errorf("daily counters = %d/%d/%d, want 0", w.DailyEarned, w.DailySpent, w.DailyLearningMinutes)
	}
	if len(w.DailyRewardUsage) != 0 {
		t.Errorf("DailyRewardUsage = %v, want empty", w.DailyRewardUsage)
	}
	if !SameDay(w.LastResetDate, today) {
		t.Errorf("LastResetDate = %v, want %v", w.LastResetDate, today)
	}
}

func TestRolloverIdempotent(t *testing.T) {
	today := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	w := newTestWallet()
	w.Balance = 25
	w.DailyEarned = 10
	w.DailySpent = 5
	w.LastResetDate = today.AddDate(0, 0, -1)

	RolloverIfNeeded(w, today)
	after := *w
	afterUsage := map[string]int{}
	for k, v := range w.DailyRewardUsage {
		afterUsage[k] = v
	}

	// Later the same day, even at a different hour.
	if RolloverIfNeeded(w, today.Add(9*time.Hour)) {
		t.Fatal("second RolloverIfNeeded() on the same day rolled over again")
	}

	second := *w
	after.DailyRewardUsage, second.DailyRewardUsage = nil, nil
	if !reflect.DeepEqual(after, second) {
		t.Errorf("wallet changed on idempotent rollover: %+v vs %+v", after, second)
	}
	if !reflect.DeepEqual(afterUsage, map[string]int{}) {
		t.Errorf("usage changed on idempotent rollover: %v", afterUsage)
	}
}

func TestRolloverNotNeededSameDay(t *testing.T) {
	w := newTestWallet()
	w.DailyEarned = 7
	w.LastResetDate = time.Date(2025, 3, 10, 0, 5, 0, 0, time.UTC)

	if RolloverIfNeeded(w, time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)) {
		t.Fatal("rollover fired within the same calendar day")
	}
	if w.DailyEarned != 7 {
		t.Errorf("DailyEarned = %d, want 7", w.DailyEarned)
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    time.Date(2025, 3, 10, 0, 0, 1, 0, time.UTC),
			b:    time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "midnight boundary",
			a:    time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
			b:    time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day across zones normalizes to UTC",
			a:    time.Date(2025, 3, 10, 22, 0, 0, 0, time.FixedZone("UTC-4", -4*60*60)),
			b:    time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCarryoverProjection(t *testing.T) {
	w := newTestWallet()
	w.Balance = 25
	w.DailyEarned = 10
	w.DailySpent = 5

	if got := w.CarryoverBalance(); got != 20 {
		t.Errorf("CarryoverBalance() = %d, want 20", got)
	}
	if !w.HasCarryover() {
		t.Error("HasCarryover() = false, want true")
	}

	w.DailyEarned = 30
	w.DailySpent = 5
	if got := w.CarryoverBalance(); got != 0 {
		t.Errorf("CarryoverBalance() = %d, want 0", got)
	}
	if w.HasCarryover() {
		t.Error("HasCarryover() = true, want false")
	}
}
