package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

func newSettingsUseCase(f *fixture) *UpdateWalletSettingsUseCase {
	return NewUpdateWalletSettingsUseCase(f.walletRepo, f.childRepo, NewWalletLocker(), &fakeClock{now: testNow})
}

func TestUpdateWalletSettingsChangesThreshold(t *testing.T) {
	f := newFixture()
	uc := newSettingsUseCase(f)

	output, err := uc.Execute(context.Background(), UpdateWalletSettingsInput{
		ParentID:                    f.parentID,
		ChildID:                     f.child.ID,
		MinimumDailyLearningMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Wallet.MinimumDailyLearningMinutes != 30 {
		t.Errorf("MinimumDailyLearningMinutes = %d, want 30", output.Wallet.MinimumDailyLearningMinutes)
	}
	if f.walletRepo.commits != 1 {
		t.Errorf("commits = %d, want 1", f.walletRepo.commits)
	}
	if f.wallet.MinimumDailyLearningMinutes != 30 {
		t.Errorf("persisted threshold = %d, want 30", f.wallet.MinimumDailyLearningMinutes)
	}
}

func TestUpdateWalletSettingsLoweringOpensPurchases(t *testing.T) {
	f := newFixture()
	f.addLearningApp("com.example.mathly", 2)
	uc := newSettingsUseCase(f)

	// Ten learning minutes: below the default threshold of 15.
	if _, err := f.uc.Execute(context.Background(), RecordLearningTimeInput{
		ParentID: f.parentID,
		ChildID:  f.child.ID,
		AppID:    "com.example.mathly",
		Minutes:  10,
	}); err != nil {
		t.Fatalf("earn failed: %v", err)
	}
	if f.wallet.DailyLearningMinutes >= f.wallet.MinimumDailyLearningMinutes {
		t.Fatal("fixture expects the learning gate closed before the change")
	}

	if _, err := uc.Execute(context.Background(), UpdateWalletSettingsInput{
		ParentID:                    f.parentID,
		ChildID:                     f.child.ID,
		MinimumDailyLearningMinutes: 10,
	}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if f.wallet.DailyLearningMinutes < f.wallet.MinimumDailyLearningMinutes {
		t.Errorf("gate still closed: %d minutes against threshold %d",
			f.wallet.DailyLearningMinutes, f.wallet.MinimumDailyLearningMinutes)
	}
}

func TestUpdateWalletSettingsRollsOverStaleWallet(t *testing.T) {
	f := newFixture()
	f.wallet.Balance = 25
	f.wallet.DailyEarned = 25
	f.wallet.DailyLearningMinutes = 20
	f.wallet.LastResetDate = testNow.AddDate(0, 0, -1)
	uc := newSettingsUseCase(f)

	output, err := uc.Execute(context.Background(), UpdateWalletSettingsInput{
		ParentID:                    f.parentID,
		ChildID:                     f.child.ID,
		MinimumDailyLearningMinutes: 20,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Wallet.Balance != 25 {
		t.Errorf("balance = %d, want carryover 25", output.Wallet.Balance)
	}
	if output.Wallet.DailyLearningMinutes != 0 {
		t.Errorf("DailyLearningMinutes = %d, want 0 after rollover", output.Wallet.DailyLearningMinutes)
	}
	if output.Wallet.MinimumDailyLearningMinutes != 20 {
		t.Errorf("MinimumDailyLearningMinutes = %d, want 20", output.Wallet.MinimumDailyLearningMinutes)
	}
}

func TestUpdateWalletSettingsValidation(t *testing.T) {
	f := newFixture()
	uc := newSettingsUseCase(f)

	tests := []struct {
		name    string
		input   UpdateWalletSettingsInput
		wantErr error
	}{
		{
			name: "negative threshold",
			input: UpdateWalletSettingsInput{
				ParentID:                    f.parentID,
				ChildID:                     f.child.ID,
				MinimumDailyLearningMinutes: -1,
			},
			wantErr: domainerror.ErrInvalidAmount,
		},
		{
			name: "unknown child",
			input: UpdateWalletSettingsInput{
				ParentID:                    f.parentID,
				ChildID:                     uuid.New(),
				MinimumDailyLearningMinutes: 10,
			},
			wantErr: domainerror.ErrChildNotFound,
		},
		{
			name: "foreign child",
			input: UpdateWalletSettingsInput{
				ParentID:                    uuid.New(),
				ChildID:                     f.child.ID,
				MinimumDailyLearningMinutes: 10,
			},
			wantErr: domainerror.ErrChildNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if f.walletRepo.commits != 0 {
		t.Errorf("commits = %d, want 0 after rejected inputs", f.walletRepo.commits)
	}
	if f.wallet.MinimumDailyLearningMinutes != entity.DefaultMinimumDailyLearningMinutes {
		t.Errorf("threshold changed by rejected input: %d", f.wallet.MinimumDailyLearningMinutes)
	}
}
