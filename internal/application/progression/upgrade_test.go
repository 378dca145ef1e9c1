package progression

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/horde/internal/domain/entity"
	"github.com/younwookim/horde/internal/infrastructure/storage"
)

func testDefs() map[UpgradeType]UpgradeDef {
	return map[UpgradeType]UpgradeDef{
		UpgradeFireRate:    {StartCost: 10, CostStep: 5, MaxLevel: 2, AddValue: 0.5},
		UpgradeBulletCount: {StartCost: 50, CostStep: 50, MaxLevel: 2, AddValue: 1, UnlockExp: 100},
		UpgradeMoveSpeed:   {StartCost: 1, MaxLevel: 3, AddValue: -10},
	}
}

func newTestUpgrades(t *testing.T) (*Upgrades, *Meta, *storage.MemoryStore) {
	m, store := newTestMeta(t)
	u, err := NewUpgrades(m, store, testDefs())
	require.NoError(t, err)
	return u, m, store
}

func TestUpgrades_Price(t *testing.T) {
	u, m, _ := newTestUpgrades(t)
	m.AddCoins(100)

	p, err := u.Price(UpgradeFireRate)
	require.NoError(t, err)
	assert.Equal(t, 10, p)

	require.NoError(t, u.TryBuy(UpgradeFireRate))
	p, _ = u.Price(UpgradeFireRate)
	assert.Equal(t, 15, p)
	assert.Equal(t, 90, m.Coins())
}

func TestUpgrades_TryBuyErrors(t *testing.T) {
	u, m, _ := newTestUpgrades(t)

	err := u.TryBuy("teleport")
	assert.True(t, errors.Is(err, ErrUnknownUpgrade))

	err = u.TryBuy(UpgradeFireRate)
	assert.True(t, errors.Is(err, ErrInsufficientCoins))
	assert.Equal(t, 0, u.Level(UpgradeFireRate))

	m.AddCoins(1000)
	err = u.TryBuy(UpgradeBulletCount)
	assert.True(t, errors.Is(err, ErrUpgradeLocked))

	require.NoError(t, u.TryBuy(UpgradeFireRate))
	require.NoError(t, u.TryBuy(UpgradeFireRate))
	err = u.TryBuy(UpgradeFireRate)
	assert.True(t, errors.Is(err, ErrUpgradeMaxed))
	assert.Equal(t, 2, u.Level(UpgradeFireRate))
}

func TestUpgrades_PersistLevels(t *testing.T) {
	u, m, store := newTestUpgrades(t)
	m.AddCoins(100)
	require.NoError(t, u.TryBuy(UpgradeFireRate))

	reloaded, err := NewUpgrades(m, store, testDefs())
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Level(UpgradeFireRate))
}

func TestUpgrades_ApplyTo(t *testing.T) {
	u, m, _ := newTestUpgrades(t)
	m.AddCoins(1000)
	m.AddExp(100)
	require.NoError(t, u.TryBuy(UpgradeFireRate))
	require.NoError(t, u.TryBuy(UpgradeBulletCount))
	require.NoError(t, u.TryBuy(UpgradeMoveSpeed))

	stats := entity.DefaultPlayerStats()
	u.ApplyTo(&stats)

	assert.Equal(t, 4.5, stats.FireRate)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 0.1, stats.MoveSpeed, "clamped")
	assert.Equal(t, 5, stats.MaxHP, "untouched")
}

func TestUpgrades_Types(t *testing.T) {
	u, _, _ := newTestUpgrades(t)

	assert.Equal(t, []UpgradeType{UpgradeBulletCount, UpgradeFireRate, UpgradeMoveSpeed}, u.Types())
}

func TestUpgrades_Available(t *testing.T) {
	u, m, _ := newTestUpgrades(t)

	assert.NoError(t, u.Available(UpgradeFireRate), "coins are not checked")
	assert.ErrorIs(t, u.Available(UpgradeBulletCount), ErrUpgradeLocked)
	assert.ErrorIs(t, u.Available("teleport"), ErrUnknownUpgrade)

	m.AddExp(100)
	assert.NoError(t, u.Available(UpgradeBulletCount))
}
