package economy

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// UpdateProgress feeds an earn event into a goal. It is a no-op unless the
// goal is active, not expired, and the app is eligible. Completion fires
// exactly once, on the update where progress first reaches the target;
// later updates keep accruing progress but never re-trigger it. The caller
// issues the bonus when completedNow is true — the tracker itself never
// touches the ledger, so the two stay independently testable.
func UpdateProgress(g *entity.Goal, appID string, earnedAmount int, now time.Time) (completedNow bool) {
	if !g.IsActive || g.IsExpired(now) || !g.IsEligibleApp(appID) || earnedAmount <= 0 {
		return false
	}

	g.Progress += earnedAmount
	g.UpdatedAt = now.UTC()

	if g.Progress >= g.TargetCoinz && !g.IsCompleted {
		g.IsCompleted = true
		return true
	}

	return false
}
