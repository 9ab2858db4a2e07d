package generator

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"agrifleet/internal/fleet"
	"agrifleet/internal/observability/metrics"
	"agrifleet/internal/simcard"
	"agrifleet/internal/snapshot"
	"agrifleet/internal/taxonomy"
	"agrifleet/internal/telemetry"
)

// Runner wires the generators into one batch: taxonomy to fleet, fleet to
// current readings and hourly history, plus the SIM inventory, assembled into
// a snapshot.
type Runner struct {
	catalog *taxonomy.Catalog
	cfg     Config
	store   snapshot.Store
	logger  *log.Logger
	clock   func() time.Time
}

// Option customizes a Runner.
type Option func(*Runner)

// WithClock overrides the wall clock, for reproducible runs.
func WithClock(clock func() time.Time) Option {
	return func(r *Runner) { r.clock = clock }
}

// NewRunner constructs a Runner.
func NewRunner(catalog *taxonomy.Catalog, cfg Config, store snapshot.Store, logger *log.Logger, opts ...Option) (*Runner, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", fleet.ErrInvalidTaxonomy)
	}
	if store == nil {
		return nil, errors.New("generator: store required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		catalog: catalog,
		cfg:     cfg,
		store:   store,
		logger:  logger,
		clock:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Generate produces a fresh snapshot without persisting it.
func (r *Runner) Generate() (*snapshot.Snapshot, error) {
	started := time.Now()
	snap, err := r.generate()
	if err != nil {
		metrics.ObserveGenerate(metrics.ResultError, time.Since(started))
		return nil, err
	}
	metrics.ObserveGenerate(metrics.ResultSuccess, time.Since(started))
	metrics.AddGenerated(len(snap.Devices), len(snap.History), len(snap.SimCards))
	return snap, nil
}

func (r *Runner) generate() (*snapshot.Snapshot, error) {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = r.clock().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	now := r.clock().Truncate(time.Second)

	devices, err := fleet.Generate(r.catalog, r.cfg.fleetConfig(), rng, now)
	if err != nil {
		return nil, err
	}

	sampler := telemetry.NewSampler()
	current := make(map[string]telemetry.Reading, len(devices))
	for _, device := range devices {
		if reading := sampler.Sample(device, nil, rng, now); reading != nil {
			current[device.ID] = *reading
		}
	}

	windowStart := now.Add(-time.Duration(r.cfg.HistoryDays) * 24 * time.Hour)
	history, err := telemetry.Synthesize(devices, windowStart, now, r.cfg.synthesisConfig(), rng)
	if err != nil {
		return nil, err
	}

	cards, err := simcard.Generate(r.cfg.simCardConfig(), rng, now)
	if err != nil {
		return nil, err
	}

	return &snapshot.Snapshot{
		Devices:  devices,
		Current:  current,
		History:  history,
		SimCards: cards,
		Stats: snapshot.Stats{
			GenerationID: uuid.NewString(),
			GeneratedAt:  now,
		},
	}, nil
}

// Run generates a snapshot and persists it to target.
func (r *Runner) Run(target string) (*snapshot.Snapshot, error) {
	snap, err := r.Generate()
	if err != nil {
		return nil, err
	}

	started := time.Now()
	if err := r.store.Save(snap, target); err != nil {
		metrics.ObserveSnapshotSave(metrics.ResultError, time.Since(started))
		return nil, err
	}
	metrics.ObserveSnapshotSave(metrics.ResultSuccess, time.Since(started))

	if r.logger != nil {
		r.logger.Printf("snapshot %s saved to %s: devices=%d online=%d points=%d sims=%d",
			snap.Stats.GenerationID, target, snap.Stats.TotalDevices, snap.Stats.OnlineDevices,
			snap.Stats.DataPoints, snap.Stats.SimCards)
	}
	return snap, nil
}

// LoadOrRun loads the snapshot at target, regenerating it only when none is
// stored there. Corrupted snapshots are not regenerated over; they surface as
// persistence errors.
func (r *Runner) LoadOrRun(target string) (*snapshot.Snapshot, error) {
	snap, err := r.store.Load(target)
	if err == nil {
		metrics.IncSnapshotLoad(metrics.ResultSuccess)
		return snap, nil
	}
	if !errors.Is(err, snapshot.ErrNotFound) {
		metrics.IncSnapshotLoad(metrics.ResultError)
		return nil, err
	}
	if r.logger != nil {
		r.logger.Printf("no snapshot at %s, regenerating", target)
	}
	return r.Run(target)
}
