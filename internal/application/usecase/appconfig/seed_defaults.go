package appconfig

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// defaultApp is one entry of the seed catalog.
type defaultApp struct {
	appID          string
	displayName    string
	category       entity.AppCategory
	coinzRate      int
	dailyTimeLimit int
}

// defaultApps is the catalog seeded into an empty registry. Parents edit or
// disable entries afterwards.
var defaultApps = []defaultApp{
	{appID: "com.duolingo.duolingoapp", displayName: "Duolingo", category: entity.AppCategoryLearning, coinzRate: 2},
	{appID: "org.khanacademy.khanacademy", displayName: "Khan Academy", category: entity.AppCategoryLearning, coinzRate: 2},
	{appID: "com.getepic.Epic", displayName: "Epic Reading", category: entity.AppCategoryLearning, coinzRate: 1},
	{appID: "com.mojang.minecraftpe", displayName: "Minecraft", category: entity.AppCategoryReward, coinzRate: -2, dailyTimeLimit: 60},
	{appID: "com.google.ios.youtube", displayName: "YouTube", category: entity.AppCategoryReward, coinzRate: -3, dailyTimeLimit: 30},
	{appID: "com.roblox.robloxmobile", displayName: "Roblox", category: entity.AppCategoryReward, coinzRate: -2, dailyTimeLimit: 45},
}

// SeedDefaultsInput identifies whose registry to seed.
type SeedDefaultsInput struct {
	ParentID uuid.UUID
}

// SeedDefaultsOutput reports what was seeded.
type SeedDefaultsOutput struct {
	Seeded []*entity.AppConfig
}

// SeedDefaultsUseCase provisions the default app catalog for a parent whose
// registry is empty. A no-op when any configuration already exists.
type SeedDefaultsUseCase struct {
	appRepo adapter.AppConfigRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(appRepo adapter.AppConfigRepository) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		appRepo: appRepo,
	}
}

// Execute seeds the defaults.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context, input SeedDefaultsInput) (*SeedDefaultsOutput, error) {
	count, err := uc.appRepo.CountByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count app configs: %w", err)
	}
	if count > 0 {
		return &SeedDefaultsOutput{}, nil
	}

	output := &SeedDefaultsOutput{}
	for _, d := range defaultApps {
		app := entity.NewAppConfig(input.ParentID, d.appID, d.displayName, d.category, d.coinzRate, d.dailyTimeLimit)
		if err := uc.appRepo.Create(ctx, app); err != nil {
			return nil, fmt.Errorf("failed to seed app %q: %w", d.appID, err)
		}
		output.Seeded = append(output.Seeded, app)
	}

	return output, nil
}
