package economy

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

func gateWallet(balance, learningMinutes int) *entity.Wallet {
	w := newTestWallet()
	w.Balance = balance
	w.TotalEarned = balance
	w.DailyLearningMinutes = learningMinutes
	return w
}

func TestCanPurchase(t *testing.T) {
	tests := []struct {
		name            string
		balance         int
		learningMinutes int
		usedToday       int
		app             *entity.AppConfig
		minutes         int
		wantAllowed     bool
		wantReason      DenialReason
	}{
		{
			name:            "all gates pass",
			balance:         15,
			learningMinutes: 15,
			app:             rewardApp(-2, 10),
			minutes:         5,
			wantAllowed:     true,
		},
		{
			name:            "learning gate fails first even with zero balance",
			balance:         0,
			learningMinutes: 10,
			app:             rewardApp(-2, 10),
			minutes:         5,
			wantAllowed:     false,
			wantReason:      DenialLearningRequirementNotMet,
		},
		{
			name:            "balance gate fails before limit gate",
			balance:         4,
			learningMinutes: 20,
			app:             rewardApp(-2, 10),
			minutes:         30,
			wantAllowed:     false,
			wantReason:      DenialInsufficientBalance,
		},
		{
			name:            "partial daily limit remaining",
			balance:         100,
			learningMinutes: 20,
			usedToday:       5,
			app:             rewardApp(-2, 10),
			minutes:         6,
			wantAllowed:     false,
			wantReason:      DenialDailyLimitPartial,
		},
		{
			name:            "daily limit fully consumed",
			balance:         100,
			learningMinutes: 20,
			usedToday:       10,
			app:             rewardApp(-2, 10),
			minutes:         1,
			wantAllowed:     false,
			wantReason:      DenialDailyLimitReached,
		},
		{
			name:            "zero limit means unlimited",
			balance:         1000,
			learningMinutes: 20,
			usedToday:       500,
			app:             rewardApp(-2, 0),
			minutes:         400,
			wantAllowed:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := gateWallet(tt.balance, tt.learningMinutes)
			if tt.usedToday > 0 {
				w.DailyRewardUsage[tt.app.AppID] = tt.usedToday
			}

			allowed, denial := CanPurchase(w, tt.app, tt.minutes)
			if allowed != tt.wantAllowed {
				t.Fatalf("CanPurchase() allowed = %v, want %v (denial %+v)", allowed, tt.wantAllowed, denial)
			}
			if tt.wantAllowed {
				if denial != nil {
					t.Errorf("denial = %+v, want nil", denial)
				}
				return
			}
			if denial == nil || denial.Reason != tt.wantReason {
				t.Errorf("denial = %+v, want reason %s", denial, tt.wantReason)
			}
		})
	}
}

func TestCanPurchaseShortfallMessage(t *testing.T) {
	w := gateWallet(7, 15)

	allowed, denial := CanPurchase(w, rewardApp(-2, 0), 10)
	if allowed {
		t.Fatal("CanPurchase() allowed, want denial")
	}
	if denial.ShortfallCoinz != 13 {
		t.Errorf("ShortfallCoinz = %d, want 13", denial.ShortfallCoinz)
	}
	if !strings.Contains(denial.Message, "13") {
		t.Errorf("message %q does not state the shortfall", denial.Message)
	}
}

// A passing gate guarantees the subsequent spend succeeds for the same input.
func TestGatePassImpliesSpendSucceeds(t *testing.T) {
	w := gateWallet(15, 15)
	app := rewardApp(-2, 10)

	allowed, _ := CanPurchase(w, app, 5)
	if !allowed {
		t.Fatal("CanPurchase() denied, want allowed")
	}
	if _, err := Spend(w, app, 5, testTime); err != nil {
		t.Fatalf("Spend() after allowed gate failed: %v", err)
	}
	if w.Balance != 5 {
		t.Errorf("Balance = %d, want 5", w.Balance)
	}
}

func TestAffordableMinutes(t *testing.T) {
	tests := []struct {
		name            string
		balance         int
		learningMinutes int
		usedToday       int
		app             *entity.AppConfig
		want            int
	}{
		{name: "learning gate failing yields zero", balance: 100, learningMinutes: 5, app: rewardApp(-2, 0), want: 0},
		{name: "limited by balance", balance: 9, learningMinutes: 15, app: rewardApp(-2, 100), want: 4},
		{name: "limited by daily ceiling", balance: 100, learningMinutes: 15, usedToday: 7, app: rewardApp(-2, 10), want: 3},
		{name: "unlimited ceiling uses balance only", balance: 21, learningMinutes: 15, app: rewardApp(-3, 0), want: 7},
		{name: "zero rate app affords nothing", balance: 50, learningMinutes: 15, app: entity.NewAppConfig(newTestWallet().ChildID, "com.example.cam", "Camera", entity.AppCategoryNeutral, 0, 0), want: 0},
		{name: "negative balance affords nothing", balance: -5, learningMinutes: 15, app: rewardApp(-2, 0), want: 0},
		{name: "ceiling already exceeded", balance: 100, learningMinutes: 15, usedToday: 12, app: rewardApp(-2, 10), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := gateWallet(tt.balance, tt.learningMinutes)
			if tt.usedToday > 0 {
				w.DailyRewardUsage[tt.app.AppID] = tt.usedToday
			}

			if got := AffordableMinutes(w, tt.app); got != tt.want {
				t.Errorf("AffordableMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAffordableMinutesUnlimitedIsNotCapped(t *testing.T) {
	w := gateWallet(math.MaxInt/2, 15)

	got := AffordableMinutes(w, rewardApp(-1, 0))
	if got != math.MaxInt/2 {
		t.Errorf("AffordableMinutes() = %d, want %d", got, math.MaxInt/2)
	}
}

func TestSetLearningRequirement(t *testing.T) {
	w := gateWallet(20, 10)

	// Default threshold holds the gate closed at 10 minutes.
	if allowed, _ := CanPurchase(w, rewardApp(-2, 0), 5); allowed {
		t.Fatal("expected gate closed below the default threshold")
	}

	later := testTime.Add(time.Hour)
	if err := SetLearningRequirement(w, 10, later); err != nil {
		t.Fatalf("SetLearningRequirement() error = %v", err)
	}
	if w.MinimumDailyLearningMinutes != 10 {
		t.Errorf("MinimumDailyLearningMinutes = %d, want 10", w.MinimumDailyLearningMinutes)
	}
	if !w.LastModified.Equal(later) {
		t.Errorf("LastModified = %v, want %v", w.LastModified, later)
	}

	// Today's minutes count against the new threshold immediately.
	if allowed, denial := CanPurchase(w, rewardApp(-2, 0), 5); !allowed {
		t.Errorf("expected gate open after lowering threshold, denied: %+v", denial)
	}

	// Raising it closes the gate again.
	if err := SetLearningRequirement(w, 30, later); err != nil {
		t.Fatalf("SetLearningRequirement() error = %v", err)
	}
	if allowed, _ := CanPurchase(w, rewardApp(-2, 0), 5); allowed {
		t.Error("expected gate closed after raising threshold")
	}
}

func TestSetLearningRequirementRejectsNegative(t *testing.T) {
	w := gateWallet(0, 0)

	err := SetLearningRequirement(w, -1, testTime)
	if !errors.Is(err, domainerror.ErrInvalidAmount) {
		t.Fatalf("SetLearningRequirement() error = %v, want ErrInvalidAmount", err)
	}
	if w.MinimumDailyLearningMinutes != entity.DefaultMinimumDailyLearningMinutes {
		t.Errorf("threshold changed on rejected input: %d", w.MinimumDailyLearningMinutes)
	}
}

func TestSetLearningRequirementZeroOpensGate(t *testing.T) {
	w := gateWallet(20, 0)

	if err := SetLearningRequirement(w, 0, testTime); err != nil {
		t.Fatalf("SetLearningRequirement() error = %v", err)
	}
	if allowed, denial := CanPurchase(w, rewardApp(-2, 0), 5); !allowed {
		t.Errorf("expected gate open with zero threshold, denied: %+v", denial)
	}
}
