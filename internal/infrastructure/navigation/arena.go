package navigation

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)

	arriveEpsilon = 0.05
	losStepFactor = 0.25
)

// Config describes a generated arena
type Config struct {
	Cols        int
	Rows        int
	CellSize    float64
	NoiseScale  float64
	Threshold   float64 // noise above this is an obstacle, in [0,1]
	ClearRadius float64
	Seed        int64
}

var (
	_ system.Navigator   = (*Arena)(nil)
	_ system.Terrain     = (*Arena)(nil)
	_ system.LineOfSight = (*Arena)(nil)
)

type walker struct {
	agent  system.Agent
	dest   entity.Vec2
	moving bool
}

// Arena is a grid of walkable cells bounded by walls.
// It implements system.Navigator, system.Terrain and system.LineOfSight.
type Arena struct {
	cols    int
	rows    int
	cell    float64
	blocked []bool

	walkers map[entity.EntityID]*walker
}

// NewOpen creates an arena with only the border walls
func NewOpen(cols, rows int, cellSize float64) *Arena {
	a := &Arena{
		cols:    max(3, cols),
		rows:    max(3, rows),
		cell:    math.Max(0.01, cellSize),
		walkers: make(map[entity.EntityID]*walker),
	}
	a.blocked = make([]bool, a.cols*a.rows)
	for c := 0; c < a.cols; c++ {
		a.SetBlocked(c, 0, true)
		a.SetBlocked(c, a.rows-1, true)
	}
	for r := 0; r < a.rows; r++ {
		a.SetBlocked(0, r, true)
		a.SetBlocked(a.cols-1, r, true)
	}
	return a
}

// Generate builds an arena whose obstacles come from perlin noise.
// Cells within ClearRadius of any keepClear point stay open.
func Generate(cfg Config, keepClear ...entity.Vec2) *Arena {
	a := NewOpen(cfg.Cols, cfg.Rows, cfg.CellSize)
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, cfg.Seed)

	for r := 1; r < a.rows-1; r++ {
		for c := 1; c < a.cols-1; c++ {
			v := (noise.Noise2D(float64(c)*cfg.NoiseScale, float64(r)*cfg.NoiseScale) + 1) / 2
			if v <= cfg.Threshold {
				continue
			}
			center := a.CellCenter(c, r)
			if nearAny(center, keepClear, cfg.ClearRadius) {
				continue
			}
			a.SetBlocked(c, r, true)
		}
	}
	return a
}

func nearAny(p entity.Vec2, points []entity.Vec2, radius float64) bool {
	for _, q := range points {
		if p.Dist(q) <= radius {
			return true
		}
	}
	return false
}

// Cols returns the grid width in cells
func (a *Arena) Cols() int { return a.cols }

// Rows returns the grid height in cells
func (a *Arena) Rows() int { return a.rows }

// CellSize returns the side of a cell in world units
func (a *Arena) CellSize() float64 { return a.cell }

// Size returns the arena extent in world units
func (a *Arena) Size() (w, h float64) {
	return float64(a.cols) * a.cell, float64(a.rows) * a.cell
}

// Center returns the middle of the arena
func (a *Arena) Center() entity.Vec2 {
	w, h := a.Size()
	return entity.Vec2{X: w / 2, Y: h / 2}
}

// CellCenter returns the world position of a cell's center
func (a *Arena) CellCenter(col, row int) entity.Vec2 {
	return entity.Vec2{X: (float64(col) + 0.5) * a.cell, Y: (float64(row) + 0.5) * a.cell}
}

// CellAt returns the cell containing p
func (a *Arena) CellAt(p entity.Vec2) (col, row int) {
	return int(math.Floor(p.X / a.cell)), int(math.Floor(p.Y / a.cell))
}

// Blocked reports whether a cell is an obstacle. Out of bounds is blocked.
func (a *Arena) Blocked(col, row int) bool {
	if col < 0 || row < 0 || col >= a.cols || row >= a.rows {
		return true
	}
	return a.blocked[row*a.cols+col]
}

// SetBlocked marks a cell
func (a *Arena) SetBlocked(col, row int, blocked bool) {
	if col < 0 || row < 0 || col >= a.cols || row >= a.rows {
		return
	}
	a.blocked[row*a.cols+col] = blocked
}

// Walkable implements system.Terrain
func (a *Arena) Walkable(p entity.Vec2) bool {
	return !a.Blocked(a.CellAt(p))
}

// Clear implements system.LineOfSight by sampling the segment
func (a *Arena) Clear(from, to entity.Vec2) bool {
	step := a.cell * losStepFactor
	d := to.Sub(from)
	n := int(math.Ceil(d.Len() / step))
	for i := 0; i <= n; i++ {
		t := 1.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		if !a.Walkable(from.Add(d.Scale(t))) {
			return false
		}
	}
	return true
}

// SampleWalkable implements system.Navigator.
// Returns point itself when walkable, else the nearest open cell center within radius.
func (a *Arena) SampleWalkable(point entity.Vec2, radius float64) (entity.Vec2, bool) {
	if a.Walkable(point) {
		return point, true
	}
	c0, r0 := a.CellAt(point)
	reach := int(math.Ceil(radius / a.cell))

	best, bestDist := entity.Vec2{}, math.Inf(1)
	for r := r0 - reach; r <= r0+reach; r++ {
		for c := c0 - reach; c <= c0+reach; c++ {
			if a.Blocked(c, r) {
				continue
			}
			center := a.CellCenter(c, r)
			if d := center.Dist(point); d <= radius && d < bestDist {
				best, bestDist = center, d
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// SetDestination implements system.Navigator
func (a *Arena) SetDestination(agent system.Agent, point entity.Vec2) {
	w := a.walker(agent)
	w.dest = point
	w.moving = true
}

// Stop implements system.Navigator
func (a *Arena) Stop(agent system.Agent) {
	a.walker(agent).moving = false
}

// Forget drops the agent's navigation state
func (a *Arena) Forget(id entity.EntityID) {
	delete(a.walkers, id)
}

// Agents returns the number of tracked agents
func (a *Arena) Agents() int { return len(a.walkers) }

// Moving reports whether the agent is walking toward a destination
func (a *Arena) Moving(id entity.EntityID) bool {
	w, ok := a.walkers[id]
	return ok && w.moving
}

func (a *Arena) walker(agent system.Agent) *walker {
	w, ok := a.walkers[agent.AgentID()]
	if !ok {
		w = &walker{agent: agent}
		a.walkers[agent.AgentID()] = w
	}
	return w
}

// Step advances every moving agent toward its destination
func (a *Arena) Step(dt float64) {
	for _, w := range a.walkers {
		if !w.moving {
			continue
		}
		pos := w.agent.Position()
		to := w.dest.Sub(pos)
		dist := to.Len()
		if dist <= arriveEpsilon {
			w.moving = false
			continue
		}
		stride := math.Min(dist, w.agent.Speed()*dt)
		w.agent.SetPosition(a.slide(pos, to.Normalize().Scale(stride)))
	}
}

// slide moves by delta, falling back to single-axis moves along walls
func (a *Arena) slide(pos, delta entity.Vec2) entity.Vec2 {
	if next := pos.Add(delta); a.Walkable(next) {
		return next
	}
	if next := pos.Add(entity.Vec2{X: delta.X}); delta.X != 0 && a.Walkable(next) {
		return next
	}
	if next := pos.Add(entity.Vec2{Y: delta.Y}); delta.Y != 0 && a.Walkable(next) {
		return next
	}
	return pos
}
