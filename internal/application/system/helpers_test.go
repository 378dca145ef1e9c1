package system

import (
	"math/rand"

	"github.com/younwookim/horde/internal/domain/entity"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// fakeNav records movement requests and accepts every sample unless reject is set
type fakeNav struct {
	dest    map[entity.EntityID]entity.Vec2
	stopped map[entity.EntityID]bool
	reject  bool
	samples int
}

func newFakeNav() *fakeNav {
	return &fakeNav{
		dest:    make(map[entity.EntityID]entity.Vec2),
		stopped: make(map[entity.EntityID]bool),
	}
}

func (n *fakeNav) SetDestination(a Agent, p entity.Vec2) {
	n.dest[a.AgentID()] = p
	n.stopped[a.AgentID()] = false
}

func (n *fakeNav) Stop(a Agent) {
	delete(n.dest, a.AgentID())
	n.stopped[a.AgentID()] = true
}

func (n *fakeNav) SampleWalkable(p entity.Vec2, _ float64) (entity.Vec2, bool) {
	n.samples++
	if n.reject {
		return entity.Vec2{}, false
	}
	return p, true
}

// fakeLOS returns a fixed visibility answer
type fakeLOS struct {
	clear bool
	calls int
}

func (l *fakeLOS) Clear(_, _ entity.Vec2) bool {
	l.calls++
	return l.clear
}

// fixedTarget provides a player as the target
func fixedTarget(p *entity.Player) TargetProvider {
	return TargetFunc(func() (Target, bool) {
		if p == nil || !p.Alive() {
			return nil, false
		}
		return p, true
	})
}

func newTestPlayer(pos entity.Vec2) *entity.Player {
	stats := entity.DefaultPlayerStats()
	stats.MaxHP = 100
	return entity.NewPlayer(1, pos, 0.5, stats)
}

func newTestEnemy(id entity.EntityID, pos entity.Vec2) *entity.Enemy {
	return entity.NewEnemy(id, "slime", pos, 0.4, entity.EnemyStats{MaxHP: 3, ContactDamage: 2, MoveSpeed: 3})
}

// fakeSpawner creates chaser enemies far away from the origin
type fakeSpawner struct {
	nextID  entity.EntityID
	spawned []*Chaser
	kinds   []string
	fail    bool
}

func (s *fakeSpawner) Spawn(kind string, pos entity.Vec2) (Combatant, bool) {
	if s.fail {
		return nil, false
	}
	s.nextID++
	c := NewChaser(newTestEnemy(s.nextID+100, pos), nil, nil, DefaultChaserConfig())
	s.spawned = append(s.spawned, c)
	s.kinds = append(s.kinds, kind)
	return c, true
}

func (s *fakeSpawner) killAll() {
	for _, c := range s.spawned {
		c.Enemy().TakeDamage(1000)
	}
}

// recordingProgression records sink calls
type recordingProgression struct {
	cleared   []int
	coins     int
	exp       int
	abilities []string
}

func (p *recordingProgression) ReportWaveCleared(w int)  { p.cleared = append(p.cleared, w) }
func (p *recordingProgression) GrantCurrency(n int)      { p.coins += n }
func (p *recordingProgression) GrantExperience(n int)    { p.exp += n }
func (p *recordingProgression) UnlockAbility(name string) { p.abilities = append(p.abilities, name) }

// recordingEvents records presentation events
type recordingEvents struct {
	NopEvents
	started   []int
	completed []int
	ticks     []float64
	spawned   []entity.EntityID
	defeated  []entity.EntityID
	damage    int
}

func (e *recordingEvents) WaveStarted(w int)                { e.started = append(e.started, w) }
func (e *recordingEvents) WaveCompleted(w int)              { e.completed = append(e.completed, w) }
func (e *recordingEvents) IntermissionTick(r float64)       { e.ticks = append(e.ticks, r) }
func (e *recordingEvents) BossSpawned(id entity.EntityID)   { e.spawned = append(e.spawned, id) }
func (e *recordingEvents) BossDefeated(id entity.EntityID)  { e.defeated = append(e.defeated, id) }
func (e *recordingEvents) DamageTaken(entity.EntityID, entity.Faction, int, int) { e.damage++ }
