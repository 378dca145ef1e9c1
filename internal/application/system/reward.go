package system

import (
	"math/rand"

	"github.com/younwookim/horde/internal/domain/entity"
)

// RewardRange is an inclusive coin/experience drop range
type RewardRange struct {
	CoinsMin int
	CoinsMax int
	ExpMin   int
	ExpMax   int
}

// DefaultRewardRange returns the stock kill reward
func DefaultRewardRange() RewardRange {
	return RewardRange{CoinsMin: 1, CoinsMax: 3, ExpMin: 1, ExpMax: 2}
}

// RewardOnDeath grants currency and experience when the enemy dies.
// Returns a func that cancels the grant.
func RewardOnDeath(e *entity.Enemy, r RewardRange, sink ProgressionSink, rng *rand.Rand) (cancel func()) {
	if sink == nil {
		return func() {}
	}
	return e.Health.OnDeath(func() {
		sink.GrantCurrency(rollRange(rng, r.CoinsMin, r.CoinsMax))
		sink.GrantExperience(rollRange(rng, r.ExpMin, r.ExpMax))
	})
}

func rollRange(rng *rand.Rand, lo, hi int) int {
	lo = max(0, lo)
	if hi < lo {
		hi = lo
	}
	return lo + rng.Intn(hi-lo+1)
}
