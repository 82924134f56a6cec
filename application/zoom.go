package application

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/infrastructure/logging"
	"github.com/felixgeelhaar/chartkit/infrastructure/resilience"
	"github.com/felixgeelhaar/chartkit/infrastructure/statemachine"
	"github.com/felixgeelhaar/chartkit/infrastructure/storage/badger"
	"github.com/felixgeelhaar/chartkit/infrastructure/telemetry"
)

// ZoomConfig configures a zoom controller.
type ZoomConfig struct {
	// ChartID identifies the chart whose zoom this controller owns.
	ChartID string

	// Initial is the starting zoom level.
	Initial chart.ZoomLevel

	// Reaggregate produces replacement data for a new zoom level. Nil
	// makes zoom changes display-only: the badge updates, the data does
	// not.
	Reaggregate resilience.Reaggregator

	// Executor wraps re-aggregation in resilience patterns. Defaults
	// when nil and Reaggregate is set.
	Executor *resilience.Executor

	// Cache short-circuits repeated re-aggregations. Optional.
	Cache *badger.Cache

	// Metrics records zoom transitions and cache outcomes. Optional.
	Metrics *telemetry.MetricsProvider

	// OnSpec receives the re-aggregated specification once it arrives.
	// Called from the controller's goroutine; stale results are
	// discarded before this fires.
	OnSpec func(spec chart.Spec)

	// OnZoom fires synchronously after every accepted zoom change,
	// before any re-aggregation completes.
	OnZoom func(zoom chart.ZoomLevel)

	// OnLoading reports whether a re-aggregation is in flight.
	OnLoading func(loading bool)
}

// ZoomController drives one chart's zoom state machine and, when a
// re-aggregation callback is configured, fetches replacement data
// without blocking the caller. Selecting a new level while a fetch is
// in flight makes the older result stale; stale results are discarded,
// never applied.
type ZoomController struct {
	mu      sync.Mutex
	cfg     ZoomConfig
	interp  *statemachine.Interpreter
	epoch   uint64
	loading bool
}

// NewZoomController creates and starts a zoom controller.
func NewZoomController(cfg ZoomConfig) (*ZoomController, error) {
	if !cfg.Initial.IsValid() {
		cfg.Initial = chart.ZoomWeek
	}
	if cfg.Reaggregate != nil && cfg.Executor == nil {
		cfg.Executor = resilience.NewDefaultExecutor()
	}

	machine, err := statemachine.NewZoomMachine(cfg.Initial)
	if err != nil {
		return nil, err
	}

	interp := statemachine.NewInterpreter(machine, statemachine.NewContext(cfg.ChartID, cfg.Initial))
	interp.Start()

	return &ZoomController{
		cfg:    cfg,
		interp: interp,
	}, nil
}

// Current returns the active zoom level.
func (z *ZoomController) Current() chart.ZoomLevel {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.interp.Current()
}

// Loading reports whether a re-aggregation is in flight.
func (z *ZoomController) Loading() bool {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.loading
}

// History returns the recorded zoom transitions.
func (z *ZoomController) History() []statemachine.Transition {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.interp.History()
}

// Select transitions to the target zoom level. Selecting the active
// level is a no-op. With a re-aggregation callback configured the data
// fetch happens on a separate goroutine; the chart stays interactive
// on its old data until the result arrives.
func (z *ZoomController) Select(ctx context.Context, to chart.ZoomLevel) error {
	z.mu.Lock()

	from := z.interp.Current()
	if to == from {
		z.mu.Unlock()
		return nil
	}

	if err := z.interp.Select(to, "user selection"); err != nil {
		z.mu.Unlock()
		return err
	}

	if z.cfg.Metrics != nil {
		z.cfg.Metrics.RecordZoomTransition(ctx, z.cfg.ChartID, from, to)
	}
	logging.ZoomTransition(logging.Get().Debug().Str("chart_id", z.cfg.ChartID), from, to).
		Msg("zoom changed")

	reaggregate := z.cfg.Reaggregate != nil
	var epoch uint64
	if reaggregate {
		z.epoch++
		epoch = z.epoch
		z.loading = true
	}
	z.mu.Unlock()

	if z.cfg.OnZoom != nil {
		z.cfg.OnZoom(to)
	}

	if !reaggregate {
		return nil
	}

	if z.cfg.OnLoading != nil {
		z.cfg.OnLoading(true)
	}

	go z.fetch(ctx, to, epoch)

	return nil
}

// fetch resolves the new data from cache or the re-aggregation
// callback, then applies it unless a newer selection superseded it.
func (z *ZoomController) fetch(ctx context.Context, to chart.ZoomLevel, epoch uint64) {
	spec, err := z.resolve(ctx, to)

	z.mu.Lock()
	stale := epoch != z.epoch
	if !stale {
		z.loading = false
	}
	z.mu.Unlock()

	if stale {
		logging.Zoom(logging.Get().Debug().Str("chart_id", z.cfg.ChartID), to).
			Msg("discarding stale re-aggregation result")
		return
	}

	if z.cfg.OnLoading != nil {
		z.cfg.OnLoading(false)
	}

	if err != nil {
		// Keep showing the old data.
		logging.Zoom(logging.Get().Warn().Err(err).Str("chart_id", z.cfg.ChartID), to).
			Msg("re-aggregation failed, keeping previous data")
		return
	}

	if z.cfg.OnSpec != nil {
		z.cfg.OnSpec(spec)
	}
}

// resolve checks the cache before falling through to the resilient
// re-aggregation callback, and fills the cache on a miss.
func (z *ZoomController) resolve(ctx context.Context, to chart.ZoomLevel) (chart.Spec, error) {
	if z.cfg.Cache != nil {
		raw, found, err := z.cfg.Cache.Get(ctx, z.cfg.ChartID, to)
		if err == nil && found {
			if spec, perr := chart.Parse(raw); perr == nil {
				if z.cfg.Metrics != nil {
					z.cfg.Metrics.RecordCacheHit(ctx, z.cfg.ChartID)
				}
				logging.Cached(logging.Get().Debug().Str("chart_id", z.cfg.ChartID), true).
					Msg("re-aggregation served from cache")
				return spec, nil
			}
		}
		if z.cfg.Metrics != nil {
			z.cfg.Metrics.RecordCacheMiss(ctx, z.cfg.ChartID)
		}
	}

	spec, err := z.cfg.Executor.Reaggregate(ctx, z.cfg.Reaggregate, z.cfg.ChartID, to)
	if err != nil {
		return nil, err
	}

	if z.cfg.Cache != nil {
		if raw, merr := json.Marshal(spec); merr == nil {
			_ = z.cfg.Cache.Put(ctx, z.cfg.ChartID, to, raw)
		}
	}

	return spec, nil
}

// Close stops the state machine. Any in-flight fetch is invalidated
// rather than waited for: bumping the epoch makes its result stale, so
// it drops out in fetch without touching the callbacks.
func (z *ZoomController) Close() {
	z.mu.Lock()
	z.epoch++
	z.loading = false
	z.mu.Unlock()
	z.interp.Stop()
}
