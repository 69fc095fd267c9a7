package economy

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

var testTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestWallet() *entity.Wallet {
	return entity.NewWallet(uuid.New(), testTime)
}

func learningApp(rate int) *entity.AppConfig {
	return entity.NewAppConfig(uuid.New(), "com.example.mathly", "Mathly", entity.AppCategoryLearning, rate, 0)
}

func rewardApp(rate, dailyLimit int) *entity.AppConfig {
	return entity.NewAppConfig(uuid.New(), "com.example.blockcraft", "BlockCraft", entity.AppCategoryReward, rate, dailyLimit)
}

func TestEarn(t *testing.T) {
	tests := []struct {
		name              string
		app               *entity.AppConfig
		minutes           int
		amount            int
		wantBalance       int
		wantDailyLearning int
	}{
		{
			name:              "learning app accrues coinz and minutes",
			app:               learningApp(2),
			minutes:           10,
			amount:            20,
			wantBalance:       20,
			wantDailyLearning: 10,
		},
		{
			name:              "zero amount is recorded without balance change",
			app:               learningApp(1),
			minutes:           0,
			amount:            0,
			wantBalance:       0,
			wantDailyLearning: 0,
		},
		{
			name:              "neutral app earns nothing toward learning minutes",
			app:               entity.NewAppConfig(uuid.New(), "com.example.cam", "Camera", entity.AppCategoryNeutral, 0, 0),
			minutes:           5,
			amount:            0,
			wantBalance:       0,
			wantDailyLearning: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWallet()

			tx, err := Earn(w, tt.app, tt.minutes, tt.amount, testTime)
			if err != nil {
				t.Fatalf("Earn() error = %v", err)
			}
			if tx == nil {
				t.Fatal("Earn() transaction is nil")
			}
			if w.Balance != tt.wantBalance {
				t.Errorf("Balance = %d, want %d", w.Balance, tt.wantBalance)
			}
			if w.TotalEarned != tt.amount || w.DailyEarned != tt.amount {
				t.Errorf("TotalEarned/DailyEarned = %d/%d, want %d", w.TotalEarned, w.DailyEarned, tt.amount)
			}
			if w.DailyLearningMinutes != tt.wantDailyLearning {
				t.Errorf("DailyLearningMinutes = %d, want %d", w.DailyLearningMinutes, tt.wantDailyLearning)
			}
			if tx.Amount != tt.amount || tx.Type != entity.TransactionTypeEarned {
				t.Errorf("transaction = %+v, want earned/%d", tx, tt.amount)
			}
		})
	}
}

func TestEarnNegativeAmount(t *testing.T) {
	w := newTestWallet()

	_, err := Earn(w, learningApp(1), 5, -5, testTime)
	if !errors.Is(err, domainerror.ErrInvalidAmount) {
		t.Fatalf("Earn() error = %v, want ErrInvalidAmount", err)
	}
	if w.Balance != 0 || w.TotalEarned != 0 {
		t.Error("wallet mutated on failed earn")
	}
}

func TestSpend(t *testing.T) {
	w := newTestWallet()
	app := rewardApp(-2, 0)

	if _, err := Earn(w, learningApp(1), 20, 20, testTime); err != nil {
		t.Fatal(err)
	}

	tx, err := Spend(w, app, 5, testTime)
	if err != nil {
		t.Fatalf("Spend() error = %v", err)
	}
	if w.Balance != 10 {
		t.Errorf("Balance = %d, want 10", w.Balance)
	}
	if w.TotalSpent != 10 || w.DailySpent != 10 {
		t.Errorf("TotalSpent/DailySpent = %d/%d, want 10", w.TotalSpent, w.DailySpent)
	}
	if got := w.RewardUsageToday(app.AppID); got != 5 {
		t.Errorf("RewardUsageToday = %d, want 5", got)
	}
	if tx.Amount != -10 || tx.Type != entity.TransactionTypeSpent || tx.MinutesInvolved != 5 {
		t.Errorf("transaction = %+v, want spent/-10/5min", tx)
	}
}

func TestSpendValidation(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		minutes int
		wantErr error
	}{
		{name: "zero minutes", balance: 100, minutes: 0, wantErr: domainerror.ErrInvalidAmount},
		{name: "negative minutes", balance: 100, minutes: -3, wantErr: domainerror.ErrInvalidAmount},
		{name: "cost exceeds balance", balance: 9, minutes: 5, wantErr: domainerror.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWallet()
			w.Balance = tt.balance
			w.TotalEarned = tt.balance

			_, err := Spend(w, rewardApp(-2, 0), tt.minutes, testTime)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Spend() error = %v, want %v", err, tt.wantErr)
			}
			if w.Balance != tt.balance || w.TotalSpent != 0 || len(w.DailyRewardUsage) != 0 {
				t.Error("wallet mutated on failed spend")
			}
		})
	}
}

func TestSpendNeverGoesNegative(t *testing.T) {
	w := newTestWallet()
	w.Balance = 10
	w.TotalEarned = 10

	// 6 minutes at 2/min costs 12 > 10
	if _, err := Spend(w, rewardApp(-2, 0), 6, testTime); !errors.Is(err, domainerror.ErrInsufficientBalance) {
		t.Fatalf("Spend() error = %v, want ErrInsufficientBalance", err)
	}
	if w.Balance != 10 {
		t.Errorf("Balance = %d, want 10", w.Balance)
	}
}

func TestAdjustBalance(t *testing.T) {
	tests := []struct {
		name            string
		delta           int
		txType          entity.TransactionType
		wantBalance     int
		wantTotalEarned int
		wantTotalSpent  int
		wantErr         error
	}{
		{name: "bonus credits and counts as earned", delta: 25, txType: entity.TransactionTypeBonus, wantBalance: 25, wantTotalEarned: 25},
		{name: "penalty debits and counts as spent", delta: -40, txType: entity.TransactionTypePenalty, wantBalance: -40, wantTotalSpent: 40},
		{name: "adjustment touches balance only", delta: 13, txType: entity.TransactionTypeAdjustment, wantBalance: 13},
		{name: "negative adjustment allowed", delta: -7, txType: entity.TransactionTypeAdjustment, wantBalance: -7},
		{name: "bonus must be positive", delta: -5, txType: entity.TransactionTypeBonus, wantErr: domainerror.ErrInvalidAdjustmentDelta},
		{name: "penalty must be negative", delta: 5, txType: entity.TransactionTypePenalty, wantErr: domainerror.ErrInvalidAdjustmentDelta},
		{name: "earned is not an adjustment type", delta: 5, txType: entity.TransactionTypeEarned, wantErr: domainerror.ErrInvalidAdjustmentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWallet()

			tx, err := AdjustBalance(w, tt.delta, tt.txType, "test", testTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AdjustBalance() error = %v, want %v", err, tt.wantErr)
				}
				if w.Balance != 0 || w.TotalEarned != 0 || w.TotalSpent != 0 {
					t.Error("wallet mutated on failed adjustment")
				}
				return
			}
			if err != nil {
				t.Fatalf("AdjustBalance() error = %v", err)
			}
			if w.Balance != tt.wantBalance {
				t.Errorf("Balance = %d, want %d", w.Balance, tt.wantBalance)
			}
			if w.TotalEarned != tt.wantTotalEarned {
				t.Errorf("TotalEarned = %d, want %d", w.TotalEarned, tt.wantTotalEarned)
			}
			if w.TotalSpent != tt.wantTotalSpent {
				t.Errorf("TotalSpent = %d, want %d", w.TotalSpent, tt.wantTotalSpent)
			}
			if tx.Type != tt.txType || tx.Amount != tt.delta {
				t.Errorf("transaction = %+v, want %s/%d", tx, tt.txType, tt.delta)
			}
		})
	}
}

func TestResetWallet(t *testing.T) {
	tests := []struct {
		name        string
		balance     int
		target      int
		wantBalance int
		wantAmount  int
	}{
		{name: "reset down", balance: 50, target: 10, wantBalance: 10, wantAmount: -40},
		{name: "reset up", balance: 5, target: 30, wantBalance: 30, wantAmount: 25},
		{name: "negative target clamps to zero", balance: 20, target: -15, wantBalance: 0, wantAmount: -20},
		{name: "reset from debt", balance: -10, target: 0, wantBalance: 0, wantAmount: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWallet()
			w.Balance = tt.balance

			tx := ResetWallet(w, tt.target, "parent reset", testTime)
			if w.Balance != tt.wantBalance {
				t.Errorf("Balance = %d, want %d", w.Balance, tt.wantBalance)
			}
			if tx.Amount != tt.wantAmount || tx.Type != entity.TransactionTypeAdjustment {
				t.Errorf("transaction = %+v, want adjustment/%d", tx, tt.wantAmount)
			}
			if w.TotalEarned != 0 || w.TotalSpent != 0 {
				t.Error("reset must not touch lifetime totals")
			}
		})
	}
}

// TestLedgerSumInvariant replays a mixed operation sequence and checks that
// the ordered sum of valid transaction amounts equals the final balance.
func TestLedgerSumInvariant(t *testing.T) {
	w := newTestWallet()
	learning := learningApp(2)
	reward := rewardApp(-3, 0)

	var history []*entity.Transaction
	record := func(tx *entity.Transaction, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("operation failed: %v", err)
		}
		history = append(history, tx)
	}

	record(Earn(w, learning, 10, 20, testTime))
	record(Earn(w, learning, 15, 30, testTime))
	record(Spend(w, reward, 4, testTime))
	record(AdjustBalance(w, 25, entity.TransactionTypeBonus, "goal bonus", testTime))
	record(AdjustBalance(w, -10, entity.TransactionTypePenalty, "screen smashed", testTime))
	record(AdjustBalance(w, 3, entity.TransactionTypeAdjustment, "correction", testTime))
	history = append(history, ResetWallet(w, 40, "parent reset", testTime))
	record(Earn(w, learning, 5, 10, testTime))

	sum := 0
	for _, tx := range history {
		if tx.IsValid {
			sum += tx.Amount
		}
	}
	if sum != w.Balance {
		t.Errorf("transaction sum = %d, balance = %d", sum, w.Balance)
	}
}
