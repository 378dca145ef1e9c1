package progression

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/younwookim/horde/internal/domain/entity"
)

var (
	// ErrUnknownUpgrade is returned for an upgrade type that is not configured
	ErrUnknownUpgrade = errors.New("unknown upgrade")
	// ErrUpgradeLocked is returned while the experience requirement is not met
	ErrUpgradeLocked = errors.New("upgrade locked")
	// ErrUpgradeMaxed is returned when the upgrade is at its max level
	ErrUpgradeMaxed = errors.New("upgrade at max level")
)

// UpgradeType names an upgradable player stat
type UpgradeType string

const (
	UpgradeMoveSpeed    UpgradeType = "moveSpeed"
	UpgradeMaxHP        UpgradeType = "maxHP"
	UpgradeFireRate     UpgradeType = "fireRate"
	UpgradeBulletSpeed  UpgradeType = "bulletSpeed"
	UpgradeBulletRange  UpgradeType = "bulletRange"
	UpgradeBulletDamage UpgradeType = "bulletDamage"
	UpgradeBulletSize   UpgradeType = "bulletSize"
	UpgradeBulletCount  UpgradeType = "bulletCount"
)

const upgradeKeyPrefix = "upgrade:"

// UpgradeDef prices one upgrade track
type UpgradeDef struct {
	StartCost int
	CostStep  int
	MaxLevel  int
	AddValue  float64 // stat gain per level
	UnlockExp int
}

// Upgrades is the persistent upgrade shop
type Upgrades struct {
	meta   *Meta
	store  Store
	defs   map[UpgradeType]UpgradeDef
	levels map[UpgradeType]int
}

// NewUpgrades loads the purchased levels of every defined track
func NewUpgrades(meta *Meta, store Store, defs map[UpgradeType]UpgradeDef) (*Upgrades, error) {
	u := &Upgrades{
		meta:   meta,
		store:  store,
		defs:   defs,
		levels: make(map[UpgradeType]int, len(defs)),
	}
	for t, def := range defs {
		lvl, err := store.LoadInt(upgradeKeyPrefix + string(t))
		if err != nil {
			return nil, fmt.Errorf("failed to load upgrade %s: %w", t, err)
		}
		u.levels[t] = min(max(0, lvl), max(0, def.MaxLevel))
	}
	return u, nil
}

// Types returns the configured upgrade types, sorted
func (u *Upgrades) Types() []UpgradeType {
	types := make([]UpgradeType, 0, len(u.defs))
	for t := range u.defs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Level returns the purchased level of t
func (u *Upgrades) Level(t UpgradeType) int { return u.levels[t] }

// Price returns the cost of the next level of t
func (u *Upgrades) Price(t UpgradeType) (int, error) {
	def, ok := u.defs[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUpgrade, t)
	}
	return def.StartCost + def.CostStep*u.levels[t], nil
}

// Available reports why the next level of t cannot be bought, ignoring coins
func (u *Upgrades) Available(t UpgradeType) error {
	def, ok := u.defs[t]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUpgrade, t)
	}
	if u.meta.Exp() < def.UnlockExp {
		return fmt.Errorf("%w: %s needs %d exp", ErrUpgradeLocked, t, def.UnlockExp)
	}
	if u.levels[t] >= def.MaxLevel {
		return fmt.Errorf("%w: %s", ErrUpgradeMaxed, t)
	}
	return nil
}

// TryBuy purchases the next level of t
func (u *Upgrades) TryBuy(t UpgradeType) error {
	if err := u.Available(t); err != nil {
		return err
	}

	price, _ := u.Price(t)
	if err := u.meta.SpendCoins(price); err != nil {
		return fmt.Errorf("failed to buy %s for %d: %w", t, price, err)
	}
	u.levels[t]++
	if err := u.store.SaveInt(upgradeKeyPrefix+string(t), u.levels[t]); err != nil {
		return fmt.Errorf("failed to save upgrade %s: %w", t, err)
	}
	return nil
}

func (u *Upgrades) gain(t UpgradeType) float64 {
	return float64(u.levels[t]) * u.defs[t].AddValue
}

// ApplyTo adds the purchased levels to s and clamps the result
func (u *Upgrades) ApplyTo(s *entity.PlayerStats) {
	s.MoveSpeed = math.Max(0.1, s.MoveSpeed+u.gain(UpgradeMoveSpeed))
	s.MaxHP = max(1, s.MaxHP+int(math.Round(u.gain(UpgradeMaxHP))))
	s.FireRate = math.Max(0.01, s.FireRate+u.gain(UpgradeFireRate))
	s.Bullet.Speed = math.Max(0.1, s.Bullet.Speed+u.gain(UpgradeBulletSpeed))
	s.Bullet.Range = math.Max(0.1, s.Bullet.Range+u.gain(UpgradeBulletRange))
	s.Bullet.Damage = max(1, s.Bullet.Damage+int(math.Round(u.gain(UpgradeBulletDamage))))
	s.Bullet.Size = math.Max(0.01, s.Bullet.Size+u.gain(UpgradeBulletSize))
	s.Count = max(1, s.Count+int(math.Round(u.gain(UpgradeBulletCount))))
}
