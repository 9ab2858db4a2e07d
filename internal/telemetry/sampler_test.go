package telemetry

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"agrifleet/internal/fleet"
	"agrifleet/internal/taxonomy"
)

var testNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func testDevice(status fleet.Status) fleet.Device {
	return fleet.Device{
		ID:     "000000001001",
		Type:   "weather-station",
		Status: status,
		Parameters: []taxonomy.ParameterSpec{
			{Key: "temperature", Min: 15, Max: 35, Shaping: taxonomy.ShapingThermal},
			{Key: "humidity", Min: 40, Max: 85, Shaping: taxonomy.ShapingHumidity},
			{Key: "mode", Values: []string{"eco", "normal", "boost"}},
		},
	}
}

func TestSampleOffline(t *testing.T) {
	s := NewSampler()
	if got := s.Sample(testDevice(fleet.StatusOffline), nil, rand.New(rand.NewSource(1)), testNow); got != nil {
		t.Fatalf("offline device produced a reading: %+v", got)
	}
}

func TestSampleFreshDraw(t *testing.T) {
	s := NewSampler()
	device := testDevice(fleet.StatusOnline)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		reading := s.Sample(device, nil, rng, testNow)
		if reading == nil {
			t.Fatalf("online device produced no reading")
		}
		if !reading.Timestamp.Equal(testNow) {
			t.Fatalf("timestamp = %s", reading.Timestamp)
		}
		for _, spec := range device.Parameters {
			v, ok := reading.Value(spec.Key)
			if !ok {
				t.Fatalf("missing value for %s", spec.Key)
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

func TestSampleBaselineJitter(t *testing.T) {
	s := NewSampler()
	device := testDevice(fleet.StatusOnline)
	rng := rand.New(rand.NewSource(3))

	prev := s.Sample(device, nil, rng, testNow)
	for i := 0; i < 200; i++ {
		next := s.Sample(device, prev, rng, testNow.Add(time.Minute))
		for _, spec := range device.Parameters {
			if spec.IsEnum() {
				continue
			}
			base, _ := prev.Value(spec.Key)
			got, _ := next.Value(spec.Key)
			if got.Float() < spec.Min || got.Float() > spec.Max {
				t.Fatalf("%s = %v outside range after jitter", spec.Key, got.Float())
			}
			// Rounding adds up to half a cent on top of the jitter bound.
			maxDrift := spec.Width()*s.JitterFraction + 0.005
			if drift := math.Abs(got.Float() - base.Float()); drift > maxDrift {
				t.Fatalf("%s drifted %v, max %v", spec.Key, drift, maxDrift)
			}
		}
		prev = next
	}
}

func TestSampleIgnoresTextBaseline(t *testing.T) {
	s := NewSampler()
	device := testDevice(fleet.StatusOnline)
	rng := rand.New(rand.NewSource(4))

	prev := &Reading{
		Timestamp: testNow,
		Values:    map[string]Value{"temperature": TextValue("broken")},
	}
	reading := s.Sample(device, prev, rng, testNow)
	v, ok := reading.Value("temperature")
	if !ok || !v.IsNumber() {
		t.Fatalf("expected fresh numeric draw, got %+v", v)
	}
}

func TestReadingClone(t *testing.T) {
	reading := &Reading{
		Timestamp: testNow,
		Values:    map[string]Value{"temperature": NumberValue(21.5)},
	}
	clone := reading.Clone()
	clone.Values["temperature"] = NumberValue(99)
	if reading.Values["temperature"].Float() != 21.5 {
		t.Fatalf("clone mutated the original reading")
	}

	var nilReading *Reading
	if nilReading.Clone() != nil {
		t.Fatalf("nil reading clone should be nil")
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
