package progression

import (
	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
	"github.com/younwookim/horde/internal/infrastructure/config"
)

// Profile is one save: the wallet plus the upgrade shop
type Profile struct {
	Meta     *Meta
	Upgrades *Upgrades
}

// OpenProfile loads the save held by store
func OpenProfile(store Store, cfg *config.GameConfig) (*Profile, error) {
	meta, err := NewMeta(store, cfg.Run.Progression.BossUnlockExp)
	if err != nil {
		return nil, err
	}
	upgrades, err := NewUpgrades(meta, store, DefsFromConfig(cfg.Upgrades))
	if err != nil {
		return nil, err
	}
	return &Profile{Meta: meta, Upgrades: upgrades}, nil
}

// DefsFromConfig converts the upgrades.yaml tracks
func DefsFromConfig(cfg *config.UpgradesConfig) map[UpgradeType]UpgradeDef {
	defs := make(map[UpgradeType]UpgradeDef, len(cfg.Upgrades))
	for name, u := range cfg.Upgrades {
		defs[UpgradeType(name)] = UpgradeDef{
			StartCost: u.StartCost,
			CostStep:  u.CostStep,
			MaxLevel:  u.MaxLevel,
			AddValue:  u.AddValue,
			UnlockExp: u.UnlockExp,
		}
	}
	return defs
}

// RunStats returns base with purchased levels and unlocked abilities applied
func (p *Profile) RunStats(base entity.PlayerStats) entity.PlayerStats {
	p.Upgrades.ApplyTo(&base)
	if p.Meta.HasAbility(system.AbilityMirrorFire) {
		base.MirrorFire = true
	}
	return base
}

// BossLocked reports whether bosses are still kept out of waves
func (p *Profile) BossLocked() bool {
	return !p.Meta.BossUnlocked()
}
