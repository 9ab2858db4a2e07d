package generator

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"agrifleet/internal/snapshot"
	"agrifleet/internal/taxonomy"
)

var testNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

type stubStore struct {
	saved      *snapshot.Snapshot
	saveTarget string
	saveErr    error

	loaded  *snapshot.Snapshot
	loadErr error
	loads   int
}

func (s *stubStore) Save(snap *snapshot.Snapshot, target string) error {
	s.saved = snap
	s.saveTarget = target
	return s.saveErr
}

func (s *stubStore) Load(target string) (*snapshot.Snapshot, error) {
	s.loads++
	return s.loaded, s.loadErr
}

func testRunner(t *testing.T, cfg Config, store snapshot.Store) *Runner {
	t.Helper()
	runner, err := NewRunner(taxonomy.Default(), cfg, store, nil, WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	return runner
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.HistoryDays = 1
	cfg.SimCards = 5
	return cfg
}

func TestNewRunnerValidation(t *testing.T) {
	if _, err := NewRunner(nil, testConfig(), &stubStore{}, nil); err == nil {
		t.Fatalf("expected error for nil catalog")
	}
	if _, err := NewRunner(taxonomy.Default(), testConfig(), nil, nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
	bad := testConfig()
	bad.SimCards = 0
	if _, err := NewRunner(taxonomy.Default(), bad, &stubStore{}, nil); err == nil {
		t.Fatalf("expected error for invalid config")
	}
}

func TestGenerateSnapshotShape(t *testing.T) {
	runner := testRunner(t, testConfig(), &stubStore{})

	snap, err := runner.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := 0
	for _, spec := range taxonomy.Default().Types() {
		want += spec.Count
	}
	if len(snap.Devices) != want {
		t.Fatalf("device count = %d, want %d", len(snap.Devices), want)
	}

	// Exactly the online devices carry a current reading.
	online := 0
	for _, d := range snap.Devices {
		reading, ok := snap.Current[d.ID]
		if d.Online() {
			online++
			if !ok {
				t.Fatalf("online device %s has no current reading", d.ID)
			}
			if !reading.Timestamp.Equal(testNow) {
				t.Fatalf("reading timestamp = %v, want %v", reading.Timestamp, testNow)
			}
		} else if ok {
			t.Fatalf("offline device %s has a current reading", d.ID)
		}
	}
	if len(snap.Current) != online {
		t.Fatalf("current map holds %d readings for %d online devices", len(snap.Current), online)
	}

	if len(snap.History) == 0 {
		t.Fatalf("no historical records for a one-day window")
	}
	for _, record := range snap.History {
		if record.Timestamp.Before(testNow.Add(-24*time.Hour)) || !record.Timestamp.Before(testNow) {
			t.Fatalf("record at %v outside the one-day window", record.Timestamp)
		}
	}

	if len(snap.SimCards) != 5 {
		t.Fatalf("sim card count = %d, want 5", len(snap.SimCards))
	}
	if snap.Stats.GenerationID == "" || !snap.Stats.GeneratedAt.Equal(testNow) {
		t.Fatalf("generation stamp = %+v", snap.Stats)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := testRunner(t, testConfig(), &stubStore{}).Generate()
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := testRunner(t, testConfig(), &stubStore{}).Generate()
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	// Everything except the random generation id repeats for a fixed seed.
	first.Stats.GenerationID = ""
	second.Stats.GenerationID = ""
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different snapshots")
	}

	other := testConfig()
	other.Seed = 100
	third, err := testRunner(t, other, &stubStore{}).Generate()
	if err != nil {
		t.Fatalf("third generate: %v", err)
	}
	if reflect.DeepEqual(first.Devices, third.Devices) {
		t.Fatalf("different seeds produced identical fleets")
	}
}

func TestRunPersists(t *testing.T) {
	store := &stubStore{}
	runner := testRunner(t, testConfig(), store)

	snap, err := runner.Run("out")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if store.saved != snap || store.saveTarget != "out" {
		t.Fatalf("run did not persist the generated snapshot")
	}

	store.saveErr = errors.New("disk full")
	if _, err := runner.Run("out"); err == nil {
		t.Fatalf("expected save error to propagate")
	}
}

func TestLoadOrRun(t *testing.T) {
	existing := &snapshot.Snapshot{Stats: snapshot.Stats{GenerationID: "stored"}}
	store := &stubStore{loaded: existing}
	runner := testRunner(t, testConfig(), store)

	snap, err := runner.LoadOrRun("out")
	if err != nil {
		t.Fatalf("load or run: %v", err)
	}
	if snap != existing {
		t.Fatalf("stored snapshot was regenerated")
	}
	if store.saved != nil {
		t.Fatalf("load hit must not write")
	}
}

func TestLoadOrRunRegenerates(t *testing.T) {
	store := &stubStore{loadErr: snapshot.ErrNotFound}
	runner := testRunner(t, testConfig(), store)

	snap, err := runner.LoadOrRun("out")
	if err != nil {
		t.Fatalf("load or run: %v", err)
	}
	if store.saved != snap {
		t.Fatalf("regenerated snapshot was not persisted")
	}
}

func TestLoadOrRunCorrupted(t *testing.T) {
	store := &stubStore{loadErr: &snapshot.PersistenceError{Op: "decode devices.json", Err: errors.New("bad json")}}
	runner := testRunner(t, testConfig(), store)

	if _, err := runner.LoadOrRun("out"); err == nil {
		t.Fatalf("expected corrupted snapshot to fail instead of regenerating")
	}
	if store.saved != nil {
		t.Fatalf("corrupted snapshot must not be overwritten")
	}
}
