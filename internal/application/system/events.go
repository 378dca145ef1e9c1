package system

import "github.com/younwookim/horde/internal/domain/entity"

// EventSink receives presentation notifications from the simulation
type EventSink interface {
	WaveStarted(wave int)
	WaveCompleted(wave int)
	IntermissionTick(remaining float64)
	BossSpawned(boss entity.EntityID)
	BossDefeated(boss entity.EntityID)
	DamageTaken(id entity.EntityID, faction entity.Faction, amount, current int)
}

// NopEvents ignores every event. Embed it to implement a subset of EventSink.
type NopEvents struct{}

func (NopEvents) WaveStarted(int)                                       {}
func (NopEvents) WaveCompleted(int)                                     {}
func (NopEvents) IntermissionTick(float64)                              {}
func (NopEvents) BossSpawned(entity.EntityID)                           {}
func (NopEvents) BossDefeated(entity.EntityID)                          {}
func (NopEvents) DamageTaken(entity.EntityID, entity.Faction, int, int) {}

// Events fans every event out to several sinks in order
type Events []EventSink

func (e Events) WaveStarted(wave int) {
	for _, s := range e {
		s.WaveStarted(wave)
	}
}

func (e Events) WaveCompleted(wave int) {
	for _, s := range e {
		s.WaveCompleted(wave)
	}
}

func (e Events) IntermissionTick(remaining float64) {
	for _, s := range e {
		s.IntermissionTick(remaining)
	}
}

func (e Events) BossSpawned(boss entity.EntityID) {
	for _, s := range e {
		s.BossSpawned(boss)
	}
}

func (e Events) BossDefeated(boss entity.EntityID) {
	for _, s := range e {
		s.BossDefeated(boss)
	}
}

func (e Events) DamageTaken(id entity.EntityID, faction entity.Faction, amount, current int) {
	for _, s := range e {
		s.DamageTaken(id, faction, amount, current)
	}
}

// EventQueue buffers events raised during a frame.
// Flush delivers them in order, so sinks never run inside the simulation step.
type EventQueue struct {
	pending []func(EventSink)
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]func(EventSink), 0, 16)}
}

func (q *EventQueue) WaveStarted(wave int) {
	q.pending = append(q.pending, func(s EventSink) { s.WaveStarted(wave) })
}

func (q *EventQueue) WaveCompleted(wave int) {
	q.pending = append(q.pending, func(s EventSink) { s.WaveCompleted(wave) })
}

func (q *EventQueue) IntermissionTick(remaining float64) {
	q.pending = append(q.pending, func(s EventSink) { s.IntermissionTick(remaining) })
}

func (q *EventQueue) BossSpawned(boss entity.EntityID) {
	q.pending = append(q.pending, func(s EventSink) { s.BossSpawned(boss) })
}

func (q *EventQueue) BossDefeated(boss entity.EntityID) {
	q.pending = append(q.pending, func(s EventSink) { s.BossDefeated(boss) })
}

func (q *EventQueue) DamageTaken(id entity.EntityID, faction entity.Faction, amount, current int) {
	q.pending = append(q.pending, func(s EventSink) { s.DamageTaken(id, faction, amount, current) })
}

// Len returns the number of buffered events
func (q *EventQueue) Len() int { return len(q.pending) }

// Flush delivers buffered events to sink and empties the queue.
// Events raised by the sink while flushing are kept for the next flush.
func (q *EventQueue) Flush(sink EventSink) {
	batch := q.pending
	q.pending = make([]func(EventSink), 0, cap(batch))
	if sink == nil {
		return
	}
	for _, deliver := range batch {
		deliver(sink)
	}
}
