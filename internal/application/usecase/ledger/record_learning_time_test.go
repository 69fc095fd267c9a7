package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

var testNow = time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeWalletRepo struct {
	wallets map[uuid.UUID]*entity.Wallet
	commits int
	// lastCommit captures what the last Commit persisted.
	lastTransactions []*entity.Transaction
	lastGoals        []*entity.Goal
	commitErr        error
}

func (r *fakeWalletRepo) Create(_ context.Context, w *entity.Wallet) error {
	r.wallets[w.ChildID] = w
	return nil
}

func (r *fakeWalletRepo) FindByChildID(_ context.Context, childID uuid.UUID) (*entity.Wallet, error) {
	w, ok := r.wallets[childID]
	if !ok {
		return nil, domainerror.ErrWalletNotFound
	}
	return w, nil
}

func (r *fakeWalletRepo) Commit(_ context.Context, w *entity.Wallet, txs []*entity.Transaction, goals []*entity.Goal) error {
	if r.commitErr != nil {
		return r.commitErr
	}
	r.commits++
	r.lastTransactions = txs
	r.lastGoals = goals
	r.wallets[w.ChildID] = w
	return nil
}

type fakeAppRepo struct {
	apps map[string]*entity.AppConfig
}

func (r *fakeAppRepo) Create(_ context.Context, a *entity.AppConfig) error {
	r.apps[a.AppID] = a
	return nil
}

func (r *fakeAppRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AppConfig, error) {
	for _, a := range r.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.ErrAppConfigNotFound
}

func (r *fakeAppRepo) FindByParentAndAppID(_ context.Context, _ uuid.UUID, appID string) (*entity.AppConfig, error) {
	a, ok := r.apps[appID]
	if !ok {
		return nil, domainerror.ErrAppNotConfigured
	}
	return a, nil
}

func (r *fakeAppRepo) ListByParent(_ context.Context, _ uuid.UUID) ([]*entity.AppConfig, error) {
	var out []*entity.AppConfig
	for _, a := range r.apps {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppRepo) ExistsByParentAndAppID(_ context.Context, _ uuid.UUID, appID string) (bool, error) {
	_, ok := r.apps[appID]
	return ok, nil
}

func (r *fakeAppRepo) CountByParent(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(r.apps)), nil
}

func (r *fakeAppRepo) Update(_ context.Context, a *entity.AppConfig) error {
	r.apps[a.AppID] = a
	return nil
}

type fakeGoalRepo struct {
	goals []*entity.Goal
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.goals = append(r.goals, g)
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) FindByChildID(_ context.Context, childID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.ChildID == childID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindActiveByChildID(ctx context.Context, childID uuid.UUID) ([]*entity.Goal, error) {
	all, _ := r.FindByChildID(ctx, childID)
	var out []*entity.Goal
	for _, g := range all {
		if g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, _ *entity.Goal) error { return nil }

func (r *fakeGoalRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeChildRepo struct {
	children map[uuid.UUID]*entity.Child
}

func (r *fakeChildRepo) CreateWithWallet(_ context.Context, c *entity.Child, _ *entity.Wallet) error {
	r.children[c.ID] = c
	return nil
}

func (r *fakeChildRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Child, error) {
	c, ok := r.children[id]
	if !ok {
		return nil, domainerror.ErrChildNotFound
	}
	return c, nil
}

func (r *fakeChildRepo) ListByParent(_ context.Context, parentID uuid.UUID) ([]*entity.Child, error) {
	var out []*entity.Child
	for _, c := range r.children {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fixture struct {
	parentID   uuid.UUID
	child      *entity.Child
	wallet     *entity.Wallet
	walletRepo *fakeWalletRepo
	appRepo    *fakeAppRepo
	goalRepo   *fakeGoalRepo
	childRepo  *fakeChildRepo
	uc         *RecordLearningTimeUseCase
}

func newFixture() *fixture {
	parentID := uuid.New()
	c := entity.NewChild(parentID, "Sam")
	w := entity.NewWallet(c.ID, testNow)

	walletRepo := &fakeWalletRepo{wallets: map[uuid.UUID]*entity.Wallet{c.ID: w}}
	appRepo := &fakeAppRepo{apps: map[string]*entity.AppConfig{}}
	goalRepo := &fakeGoalRepo{}
	childRepo := &fakeChildRepo{children: map[uuid.UUID]*entity.Child{c.ID: c}}

	uc := NewRecordLearningTimeUseCase(walletRepo, appRepo, goalRepo, childRepo, NewWalletLocker(), &fakeClock{now: testNow})

	return &fixture{
		parentID:   parentID,
		child:      c,
		wallet:     w,
		walletRepo: walletRepo,
		appRepo:    appRepo,
		goalRepo:   goalRepo,
		childRepo:  childRepo,
		uc:         uc,
	}
}

func (f *fixture) addLearningApp(appID string, rate int) *entity.AppConfig {
	app := entity.NewAppConfig(f.parentID, appID, appID, entity.AppCategoryLearning, rate, 0)
	f.appRepo.apps[appID] = app
	return app
}

func TestRecordLearningTimeEarns(t *testing.T) {
	f := newFixture()
	f.addLearningApp("com.example.mathly", 2)

	output, err := f.uc.Execute(context.Background(), RecordLearningTimeInput{
		ParentID: f.parentID,
		ChildID:  f.child.ID,
		AppID:    "com.example.mathly",
		Minutes:  10,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Wallet.Balance != 20 {
		t.Errorf("Balance = %d, want 20", output.Wallet.Balance)
	}
	if output.Wallet.DailyLearningMinutes != 10 {
		t.Errorf("DailyLearningMinutes = %d, want 10", output.Wallet.DailyLearningMinutes)
	}
	if output.Transaction.Amount != 20 {
		t.Errorf("transaction amount = %d, want 20", output.Transaction.Amount)
	}
	if f.walletRepo.commits != 1 {
		t.Errorf("commits = %d, want 1", f.walletRepo.commits)
	}
}

func TestRecordLearningTimeRollsOverStaleWallet(t *testing.T) {
	f := newFixture()
	f.addLearningApp("com.example.mathly", 1)
	f.wallet.Balance = 25
	f.wallet.DailyEarned = 10
	f.wallet.DailySpent = 5
	f.wallet.DailyLearningMinutes = 30
	f.wallet.LastResetDate = testNow.AddDate(0, 0, -1)

	output, err := f.uc.Execute(context.Background(), RecordLearningTimeInput{
		ParentID: f.parentID,
		ChildID:  f.child.ID,
		AppID:    "com.example.mathly",
		Minutes:  5,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Carryover preserved, daily counters restarted before the earn.
	if output.Wallet.Balance != 30 {
		t.Errorf("Balance = %d, want 30", output.Wallet.Balance)
	}
	if output.Wallet.DailyEarned != 5 || output.Wallet.DailyLearningMinutes != 5 {
		t.Errorf("daily counters = %d/%d, want 5/5", output.Wallet.DailyEarned, output.Wallet.DailyLearningMinutes)
	}
}

func TestRecordLearningTimeGoalBonusInSameCommit(t *testing.T) {
	f := newFixture()
	f.addLearningApp("com.example.mathly", 10)
	g := entity.NewGoal(f.child.ID, "Math week", 50, 20, []string{"com.example.mathly"}, testNow.AddDate(0, 0, -1), testNow.AddDate(0, 0, 6))
	f.goalRepo.goals = append(f.goalRepo.goals, g)

	output, err := f.uc.Execute(context.Background(), RecordLearningTimeInput{
		ParentID: f.parentID,
		ChildID:  f.child.ID,
		AppID:    "com.example.mathly",
		Minutes:  5,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.CompletedGoals) != 1 {
		t.Fatalf("CompletedGoals = %d, want 1", len(output.CompletedGoals))
	}
	if len(output.BonusTransactions) != 1 || output.BonusTransactions[0].Amount != 20 {
		t.Fatalf("BonusTransactions = %+v, want one bonus of 20", output.BonusTransactions)
	}
	// 50 earned + 20 bonus
	if output.Wallet.Balance != 70 {
		t.Errorf("Balance = %d, want 70", output.Wallet.Balance)
	}
	// Earn and bonus land in one commit, together with the goal update.
	if f.walletRepo.commits != 1 {
		t.Errorf("commits = %d, want 1", f.walletRepo.commits)
	}
	if len(f.walletRepo.lastTransactions) != 2 {
		t.Errorf("committed transactions = %d, want 2", len(f.walletRepo.lastTransactions))
	}
	if len(f.walletRepo.lastGoals) != 1 {
		t.Errorf("committed goals = %d, want 1", len(f.walletRepo.lastGoals))
	}

	// A second earn keeps accruing progress but pays no second bonus.
	output, err = f.uc.Execute(context.Background(), RecordLearningTimeInput{
		ParentID: f.parentID,
		ChildID:  f.child.ID,
		AppID:    "com.example.mathly",
		Minutes:  1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(output.CompletedGoals) != 0 || len(output.BonusTransactions) != 0 {
		t.Error("completion re-fired on a later earn")
	}
	if g.Progress != 60 {
		t.Errorf("Progress = %d, want 60", g.Progress)
	}
}

func TestRecordLearningTimeValidation(t *testing.T) {
	f := newFixture()
	app := f.addLearningApp("com.example.mathly", 2)

	tests := []struct {
		name    string
		modify  func()
		input   RecordLearningTimeInput
		wantErr error
	}{
		{
			name:    "zero minutes",
			modify:  func() {},
			input:   RecordLearningTimeInput{ParentID: f.parentID, ChildID: f.child.ID, AppID: app.AppID, Minutes: 0},
			wantErr: domainerror.ErrInvalidAmount,
		},
		{
			name:    "unknown app",
			modify:  func() {},
			input:   RecordLearningTimeInput{ParentID: f.parentID, ChildID: f.child.ID, AppID: "com.example.unknown", Minutes: 5},
			wantErr: domainerror.ErrAppNotConfigured,
		},
		{
			name:    "disabled app",
			modify:  func() { app.IsEnabled = false },
			input:   RecordLearningTimeInput{ParentID: f.parentID, ChildID: f.child.ID, AppID: app.AppID, Minutes: 5},
			wantErr: domainerror.ErrAppNotConfigured,
		},
		{
			name:    "rate category mismatch",
			modify:  func() { app.IsEnabled = true; app.CoinzRate = -2 },
			input:   RecordLearningTimeInput{ParentID: f.parentID, ChildID: f.child.ID, AppID: app.AppID, Minutes: 5},
			wantErr: domainerror.ErrRateCategoryMismatch,
		},
		{
			name:    "foreign child",
			modify:  func() { app.CoinzRate = 2 },
			input:   RecordLearningTimeInput{ParentID: uuid.New(), ChildID: f.child.ID, AppID: app.AppID, Minutes: 5},
			wantErr: domainerror.ErrChildNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.modify()
			_, err := f.uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if f.walletRepo.commits != 0 {
		t.Errorf("commits = %d, want 0 for failed operations", f.walletRepo.commits)
	}
}

var _ adapter.WalletRepository = (*fakeWalletRepo)(nil)
var _ adapter.AppConfigRepository = (*fakeAppRepo)(nil)
var _ adapter.GoalRepository = (*fakeGoalRepo)(nil)
var _ adapter.ChildRepository = (*fakeChildRepo)(nil)
