package telemetry

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"agrifleet/internal/fleet"
)

func TestSynthesizeWindow(t *testing.T) {
	devices := []fleet.Device{testDevice(fleet.StatusOnline)}
	cfg := DefaultSynthesisConfig()
	cfg.MissingRate = 0 // every slot filled, so counts are exact
	start := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	records, err := Synthesize(devices, start, end, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if len(records) != 24 {
		t.Fatalf("expected 24 records, got %d", len(records))
	}

	prev := time.Time{}
	for _, record := range records {
		if record.Timestamp.Before(start) || !record.Timestamp.Before(end) {
			t.Fatalf("timestamp %s outside [start, end)", record.Timestamp)
		}
		if !record.Timestamp.After(prev) {
			t.Fatalf("timestamps not strictly increasing at %s", record.Timestamp)
		}
		prev = record.Timestamp

		for _, spec := range devices[0].Parameters {
			v, ok := record.Values[spec.Key]
			if !ok {
				t.Fatalf("missing %s at %s", spec.Key, record.Timestamp)
			}
			if spec.IsEnum() {
				if !contains(spec.Values, *v.Text) {
					t.Fatalf("%s = %q not in enum set", spec.Key, *v.Text)
				}
				continue
			}
			if v.Float() < spec.Min || v.Float() > spec.Max {
				t.Fatalf("%s = %v outside [%v, %v]", spec.Key, v.Float(), spec.Min, spec.Max)
			}
		}
	}
}

func TestSynthesizeDiurnalShape(t *testing.T) {
	devices := []fleet.Device{testDevice(fleet.StatusOnline)}
	cfg := DefaultSynthesisConfig()
	cfg.MissingRate = 0
	cfg.ThermalNoise = 0
	cfg.HumidityNoise = 0
	start := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)

	records, err := Synthesize(devices, start, start.Add(24*time.Hour), cfg, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	byHour := make(map[int]map[string]Value)
	for _, record := range records {
		byHour[record.Timestamp.Hour()] = record.Values
	}

	// Hour 6 is the sine peak: thermal above midpoint, humidity below.
	tempSpec := devices[0].Parameters[0]
	humSpec := devices[0].Parameters[1]
	tempMid := (tempSpec.Min + tempSpec.Max) / 2
	humMid := (humSpec.Min + humSpec.Max) / 2

	peak := byHour[6]
	if peak["temperature"].Float() <= tempMid {
		t.Fatalf("thermal peak %v not above midpoint %v", peak["temperature"].Float(), tempMid)
	}
	if peak["humidity"].Float() >= humMid {
		t.Fatalf("humidity at thermal peak %v not below midpoint %v", peak["humidity"].Float(), humMid)
	}

	trough := byHour[18]
	if trough["temperature"].Float() >= tempMid {
		t.Fatalf("thermal trough %v not below midpoint %v", trough["temperature"].Float(), tempMid)
	}
	if trough["humidity"].Float() <= humMid {
		t.Fatalf("humidity at thermal trough %v not above midpoint %v", trough["humidity"].Float(), humMid)
	}
}

func TestSynthesizeMissingRate(t *testing.T) {
	devices := []fleet.Device{testDevice(fleet.StatusOnline)}
	cfg := DefaultSynthesisConfig()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	hours := 10000

	records, err := Synthesize(devices, start, start.Add(time.Duration(hours)*time.Hour), cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	missing := float64(hours-len(records)) / float64(hours)
	if math.Abs(missing-cfg.MissingRate) > 0.01 {
		t.Fatalf("missing rate %v, want ~%v", missing, cfg.MissingRate)
	}
}

func TestSynthesizeEdgeWindows(t *testing.T) {
	devices := []fleet.Device{testDevice(fleet.StatusOnline)}
	cfg := DefaultSynthesisConfig()
	start := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)

	records, err := Synthesize(devices, start, start.Add(30*time.Minute), cfg, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("short window: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("short window yielded %d records", len(records))
	}

	if _, err := Synthesize(devices, start, start.Add(-time.Hour), cfg, rand.New(rand.NewSource(5))); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("inverted window: expected ErrInvalidWindow, got %v", err)
	}

	cfg.Step = 0
	if _, err := Synthesize(devices, start, start.Add(time.Hour), cfg, rand.New(rand.NewSource(6))); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("zero step: expected ErrInvalidWindow, got %v", err)
	}
}
