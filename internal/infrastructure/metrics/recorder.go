package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
)

const namespace = "horde"

var _ system.EventSink = (*Recorder)(nil)

// Recorder exports simulation events and pool occupancy as prometheus metrics.
// It owns its registry so several recorders can coexist in tests.
type Recorder struct {
	registry *prometheus.Registry

	wavesStarted   prometheus.Counter
	wavesCompleted prometheus.Counter
	currentWave    prometheus.Gauge
	intermission   prometheus.Gauge
	bossesSpawned  prometheus.Counter
	bossesDefeated prometheus.Counter
	damageTaken    *prometheus.CounterVec
	hits           *prometheus.CounterVec
	enemiesAlive   prometheus.Gauge
	projectiles    *prometheus.GaugeVec
}

// NewRecorder creates a recorder with a fresh registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		wavesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waves_started_total",
			Help:      "Waves started",
		}),
		wavesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waves_completed_total",
			Help:      "Waves cleared",
		}),
		currentWave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_wave",
			Help:      "Index of the most recently started wave",
		}),
		intermission: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "intermission_remaining_seconds",
			Help:      "Seconds until the next wave",
		}),
		bossesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bosses_spawned_total",
			Help:      "Bosses that entered the arena",
		}),
		bossesDefeated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bosses_defeated_total",
			Help:      "Bosses defeated",
		}),
		damageTaken: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_taken_total",
			Help:      "Hit points lost, by faction",
		}, []string{"faction"}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hits_total",
			Help:      "Successful hits, by faction of the victim",
		}, []string{"faction"}),
		enemiesAlive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "enemies_alive",
			Help:      "Live enemies in the arena",
		}),
		projectiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "projectiles",
			Help:      "Projectile pool occupancy",
		}, []string{"pool", "state"}),
	}

	r.registry.MustRegister(
		r.wavesStarted, r.wavesCompleted, r.currentWave, r.intermission,
		r.bossesSpawned, r.bossesDefeated, r.damageTaken, r.hits,
		r.enemiesAlive, r.projectiles,
	)
	return r
}

// Registry returns the recorder's registry
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WaveStarted implements system.EventSink
func (r *Recorder) WaveStarted(wave int) {
	r.wavesStarted.Inc()
	r.currentWave.Set(float64(wave))
	r.intermission.Set(0)
}

// WaveCompleted implements system.EventSink
func (r *Recorder) WaveCompleted(int) {
	r.wavesCompleted.Inc()
}

// IntermissionTick implements system.EventSink
func (r *Recorder) IntermissionTick(remaining float64) {
	r.intermission.Set(remaining)
}

// BossSpawned implements system.EventSink
func (r *Recorder) BossSpawned(entity.EntityID) {
	r.bossesSpawned.Inc()
}

// BossDefeated implements system.EventSink
func (r *Recorder) BossDefeated(entity.EntityID) {
	r.bossesDefeated.Inc()
}

// DamageTaken implements system.EventSink
func (r *Recorder) DamageTaken(_ entity.EntityID, faction entity.Faction, amount, _ int) {
	r.damageTaken.WithLabelValues(label(faction)).Add(float64(amount))
	r.hits.WithLabelValues(label(faction)).Inc()
}

// ObservePool records the occupancy of a projectile pool
func (r *Recorder) ObservePool(name string, s system.PoolStats) {
	r.projectiles.WithLabelValues(name, "active").Set(float64(s.Active))
	r.projectiles.WithLabelValues(name, "idle").Set(float64(s.Idle))
	r.projectiles.WithLabelValues(name, "capacity").Set(float64(s.Capacity))
}

// SetEnemiesAlive records the live enemy count
func (r *Recorder) SetEnemiesAlive(n int) {
	r.enemiesAlive.Set(float64(n))
}

// Handler serves the registry in the prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve metrics: %w", err)
	}
}

func label(f entity.Faction) string {
	switch f {
	case entity.FactionPlayer:
		return "player"
	case entity.FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
