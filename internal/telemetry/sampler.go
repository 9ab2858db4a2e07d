package telemetry

import (
	"math"
	"math/rand"
	"time"

	"agrifleet/internal/fleet"
)

// Sampler produces one current reading per online device. It holds no
// per-device state: callers that want temporal continuity pass the previous
// reading back in, which keeps the sampler reentrant without locks.
type Sampler struct {
	// JitterFraction bounds the drift around a baseline value, as a fraction
	// of the parameter's range width.
	JitterFraction float64
}

// NewSampler returns a sampler with the observed ±5% baseline jitter.
func NewSampler() Sampler {
	return Sampler{JitterFraction: 0.05}
}

// Sample draws a reading for the device at now. Offline devices yield nil;
// they report nothing, which is not an error. When prev carries a numeric
// value for a parameter, the new value drifts from that baseline instead of
// being drawn fresh, then is clamped back into the spec range.
func (s Sampler) Sample(device fleet.Device, prev *Reading, rng *rand.Rand, now time.Time) *Reading {
	if !device.Online() {
		return nil
	}

	reading := &Reading{
		Timestamp: now.Truncate(time.Second),
		Values:    make(map[string]Value, len(device.Parameters)),
	}
	for _, spec := range device.Parameters {
		if spec.IsEnum() {
			reading.Values[spec.Key] = TextValue(spec.Values[rng.Intn(len(spec.Values))])
			continue
		}

		var value float64
		if base, ok := baselineFor(prev, spec.Key); ok {
			jitter := spec.Width() * s.JitterFraction
			value = spec.Clamp(base + uniform(rng, -jitter, jitter))
		} else {
			value = uniform(rng, spec.Min, spec.Max)
		}
		reading.Values[spec.Key] = NumberValue(round2(value))
	}
	return reading
}

func baselineFor(prev *Reading, key string) (float64, bool) {
	if prev == nil {
		return 0, false
	}
	v, ok := prev.Values[key]
	if !ok || !v.IsNumber() {
		return 0, false
	}
	return v.Float(), true
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
