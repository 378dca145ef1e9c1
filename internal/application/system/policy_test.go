package system

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/horde/internal/domain/entity"
)

func TestPolicyState_String(t *testing.T) {
	assert.Equal(t, "Seeking", PolicySeeking.String())
	assert.Equal(t, "Holding", PolicyHolding.String())
	assert.Equal(t, "Dead", PolicyDead.String())
	assert.Equal(t, "Unknown", PolicyState(42).String())
}

func TestChaser_PursuesTarget(t *testing.T) {
	nav := newFakeNav()
	player := newTestPlayer(entity.Vec2{X: 5, Y: 5})
	enemy := newTestEnemy(2, entity.Vec2{})
	c := NewChaser(enemy, nav, fixedTarget(player), DefaultChaserConfig())

	c.Update(0, 1.0/60)

	assert.Equal(t, entity.Vec2{X: 5, Y: 5}, nav.dest[enemy.ID])
	assert.Equal(t, PolicySeeking, c.State())
	assert.Equal(t, 100, player.Health.Current(), "no contact at range")
}

func TestChaser_ContactCooldown(t *testing.T) {
	nav := newFakeNav()
	player := newTestPlayer(entity.Vec2{X: 0.5})
	enemy := newTestEnemy(2, entity.Vec2{})
	c := NewChaser(enemy, nav, fixedTarget(player), ChaserConfig{ContactCooldown: 0.5})

	c.Update(0, 0.1)
	assert.Equal(t, 98, player.Health.Current())

	c.Update(0.2, 0.1)
	c.Update(0.4, 0.1)
	assert.Equal(t, 98, player.Health.Current(), "still cooling down")

	c.Update(0.5, 0.1)
	assert.Equal(t, 96, player.Health.Current())
}

func TestChaser_NoTargetStops(t *testing.T) {
	nav := newFakeNav()
	enemy := newTestEnemy(2, entity.Vec2{})
	c := NewChaser(enemy, nav, TargetFunc(func() (Target, bool) { return nil, false }), DefaultChaserConfig())

	c.Update(0, 0.1)

	assert.True(t, nav.stopped[enemy.ID])
}

func TestChaser_DeadIsTerminal(t *testing.T) {
	nav := newFakeNav()
	player := newTestPlayer(entity.Vec2{X: 0.5})
	enemy := newTestEnemy(2, entity.Vec2{})
	c := NewChaser(enemy, nav, fixedTarget(player), DefaultChaserConfig())

	enemy.TakeDamage(100)
	c.Update(0, 0.1)
	c.Update(1, 0.1)

	assert.Equal(t, PolicyDead, c.State())
	assert.True(t, nav.stopped[enemy.ID])
	assert.Equal(t, 100, player.Health.Current())
}

func newTestShooter(pos, playerPos entity.Vec2, pool *ProjectilePool, los LineOfSight) (*Shooter, *fakeNav, *entity.Player) {
	nav := newFakeNav()
	player := newTestPlayer(playerPos)
	enemy := entity.NewEnemy(2, "shooter", pos, 0.4, entity.EnemyStats{MaxHP: 5, MoveSpeed: 3.5})
	return NewShooter(enemy, nav, fixedTarget(player), pool, los, DefaultShooterConfig()), nav, player
}

func TestShooter_Hysteresis(t *testing.T) {
	s, nav, player := newTestShooter(entity.Vec2{}, entity.Vec2{X: 10}, nil, nil)
	log.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	steps := []struct {
		dist      float64
		advancing bool
	}{
		{10, true},
		{3.3, false}, // <= 4 - 0.6
		{4.0, false}, // inside the band keeps holding
		{4.7, true},  // >= 4 + 0.6
		{4.0, true},  // inside the band keeps advancing
		{3.3, false},
	}

	for i, step := range steps {
		player.Pos = entity.Vec2{X: step.dist}
		s.Update(float64(i), 0.1)
		assert.Equal(t, step.advancing, s.Advancing(), "step %d (dist %.1f)", i, step.dist)
		assert.Equal(t, !step.advancing, nav.stopped[s.Enemy().ID], "step %d", i)
	}
}

func TestShooter_FiresOnCadence(t *testing.T) {
	pool := NewProjectilePool(entity.FactionEnemy, 0)
	los := &fakeLOS{clear: true}
	s, _, _ := newTestShooter(entity.Vec2{}, entity.Vec2{X: 4}, pool, los)

	s.Update(0, 0.1)
	assert.Len(t, pool.Active(), 1)

	s.Update(0.5, 0.1)
	assert.Len(t, pool.Active(), 1, "interval not elapsed")

	s.Update(0.8, 0.1)
	assert.Len(t, pool.Active(), 2)

	shot := pool.Active()[0]
	assert.InDelta(t, 1.0, shot.Dir.X, 1e-9)
	assert.Equal(t, entity.FactionEnemy, shot.Faction)
}

func TestShooter_NoFireTooClose(t *testing.T) {
	pool := NewProjectilePool(entity.FactionEnemy, 0)
	s, _, _ := newTestShooter(entity.Vec2{}, entity.Vec2{X: 0.3}, pool, nil)

	s.Update(0, 0.1)

	assert.Empty(t, pool.Active())
}

func TestShooter_RequiresLineOfSight(t *testing.T) {
	pool := NewProjectilePool(entity.FactionEnemy, 0)
	los := &fakeLOS{clear: false}
	s, _, _ := newTestShooter(entity.Vec2{}, entity.Vec2{X: 4}, pool, los)

	s.Update(0, 0.1)
	assert.Empty(t, pool.Active())
	assert.Equal(t, 1, los.calls)

	los.clear = true
	s.Update(0.1, 0.1)
	assert.Len(t, pool.Active(), 1, "retries every tick")
}

func TestShooter_NoPoolWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	s, _, _ := newTestShooter(entity.Vec2{}, entity.Vec2{X: 4}, nil, nil)
	s.Update(0, 0.1)
	s.Update(1, 0.1)

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("shooting disabled")))
}

func newTestBoss(pool *ProjectilePool, los LineOfSight, spawner Spawner, events EventSink, playerPos entity.Vec2) (*Boss, *entity.Player) {
	nav := newFakeNav()
	player := newTestPlayer(playerPos)
	enemy := entity.NewEnemy(50, "boss", entity.Vec2{}, 0.8, entity.EnemyStats{MaxHP: 600, ContactDamage: 20, MoveSpeed: 2.5})
	return NewBoss(enemy, nav, fixedTarget(player), pool, los, spawner, events, testRNG(), DefaultBossConfig()), player
}

func TestBoss_AnnouncesOnFirstTick(t *testing.T) {
	events := &recordingEvents{}
	b, _ := newTestBoss(nil, nil, nil, events, entity.Vec2{X: 5})
	log.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.True(t, b.Enemy().Boss)
	assert.Empty(t, events.spawned)

	b.Update(0, 0.1)
	b.Update(0.1, 0.1)

	assert.Equal(t, []entity.EntityID{50}, events.spawned)
}

func TestBoss_DefeatEmitsOnce(t *testing.T) {
	events := &recordingEvents{}
	b, _ := newTestBoss(nil, nil, nil, events, entity.Vec2{X: 5})

	b.Enemy().TakeDamage(10000)
	b.Enemy().TakeDamage(10000)

	assert.Equal(t, []entity.EntityID{50}, events.defeated)
}

func TestBoss_InitialTimersRandomizedWithinHalfInterval(t *testing.T) {
	b, _ := newTestBoss(NewProjectilePool(entity.FactionEnemy, 0), nil, nil, nil, entity.Vec2{X: 100})
	b.cfg.RequireLOS = false

	b.Update(10, 0.1)

	cfg := DefaultBossConfig()
	assert.GreaterOrEqual(t, b.NextSummon(), 10.0)
	assert.Less(t, b.NextSummon(), 10+cfg.SummonInterval*0.5)
	assert.GreaterOrEqual(t, b.NextShot(), 10.0)
}

func TestBoss_LineOfSightRetry(t *testing.T) {
	pool := NewProjectilePool(entity.FactionEnemy, 0)
	los := &fakeLOS{clear: false}
	b, _ := newTestBoss(pool, los, nil, nil, entity.Vec2{X: 5})

	// run past the randomized initial delay
	b.Update(0, 0.1)
	now := b.NextShot()
	b.Update(now, 0.1)

	assert.Empty(t, pool.Active())
	assert.InDelta(t, now+1.25, b.NextShot(), 1e-9, "min(3.5/2, 1.25)")

	los.clear = true
	b.Update(b.NextShot(), 0.1)
	require.Len(t, pool.Active(), 1)
	assert.Equal(t, 12, pool.Active()[0].Damage)
	assert.Equal(t, 2.5, pool.Active()[0].Scale)
}

func TestBoss_SummonsMinions(t *testing.T) {
	spawner := &fakeSpawner{}
	b, _ := newTestBoss(nil, nil, spawner, nil, entity.Vec2{X: 20})
	log.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	b.Update(0, 0.1)
	b.Update(b.NextSummon(), 0.1)

	cfg := DefaultBossConfig()
	require.NotEmpty(t, spawner.spawned)
	assert.LessOrEqual(t, len(spawner.spawned), cfg.SummonCountMax)
	for i, c := range spawner.spawned {
		assert.Equal(t, "slime", spawner.kinds[i])
		d := c.Enemy().Pos.Len()
		assert.GreaterOrEqual(t, d, cfg.SummonRadiusMin-1e-9)
		assert.LessOrEqual(t, d, cfg.SummonRadiusMax+1e-9)
	}
}

func TestBoss_StopsAtStopDistance(t *testing.T) {
	b, _ := newTestBoss(nil, nil, nil, nil, entity.Vec2{X: 1})
	log.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	b.Update(0, 0.1)

	assert.Equal(t, PolicyHolding, b.State())
}
