package telemetry

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"agrifleet/internal/fleet"
	"agrifleet/internal/taxonomy"
)

// SynthesisConfig holds the historical shaping constants. The defaults match
// the observed generator: hourly samples, a 5% transmission-gap rate, a
// day/night sine on thermal parameters and an anti-phase sine on humidity.
type SynthesisConfig struct {
	Step        time.Duration
	MissingRate float64

	ThermalAmplitude  float64
	ThermalNoise      float64
	HumidityAmplitude float64
	HumidityNoise     float64
}

// DefaultSynthesisConfig returns the observed synthesis constants.
func DefaultSynthesisConfig() SynthesisConfig {
	return SynthesisConfig{
		Step:              time.Hour,
		MissingRate:       0.05,
		ThermalAmplitude:  0.3,
		ThermalNoise:      2,
		HumidityAmplitude: 0.2,
		HumidityNoise:     5,
	}
}

// Synthesize emits one record per (step, device) pair over [start, end),
// timestamps ascending. Pairs are skipped with probability MissingRate to
// emulate transmission gaps; consumers must tolerate the holes. A window
// shorter than one step yields an empty sequence.
func Synthesize(devices []fleet.Device, start, end time.Time, cfg SynthesisConfig, rng *rand.Rand) ([]HistoricalRecord, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s before start %s", ErrInvalidWindow, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if cfg.Step <= 0 {
		return nil, fmt.Errorf("%w: non-positive step %s", ErrInvalidWindow, cfg.Step)
	}
	if end.Sub(start) < cfg.Step {
		return nil, nil
	}

	var records []HistoricalRecord
	for ts := start.Truncate(time.Second); ts.Before(end); ts = ts.Add(cfg.Step) {
		for _, device := range devices {
			if rng.Float64() < cfg.MissingRate {
				continue
			}
			records = append(records, HistoricalRecord{
				DeviceID:   device.ID,
				DeviceType: device.Type,
				Timestamp:  ts,
				Values:     synthesizeValues(device.Parameters, ts, cfg, rng),
			})
		}
	}
	return records, nil
}

func synthesizeValues(specs []taxonomy.ParameterSpec, ts time.Time, cfg SynthesisConfig, rng *rand.Rand) map[string]Value {
	values := make(map[string]Value, len(specs))
	dayFactor := math.Sin(2 * math.Pi * float64(ts.Hour()) / 24)

	for _, spec := range specs {
		if spec.IsEnum() {
			values[spec.Key] = TextValue(spec.Values[rng.Intn(len(spec.Values))])
			continue
		}

		var value float64
		mid := (spec.Min + spec.Max) / 2
		switch spec.Shaping {
		case taxonomy.ShapingThermal:
			value = mid + spec.Width()*cfg.ThermalAmplitude*dayFactor + uniform(rng, -cfg.ThermalNoise, cfg.ThermalNoise)
		case taxonomy.ShapingHumidity:
			value = mid - spec.Width()*cfg.HumidityAmplitude*dayFactor + uniform(rng, -cfg.HumidityNoise, cfg.HumidityNoise)
		default:
			value = uniform(rng, spec.Min, spec.Max)
		}
		values[spec.Key] = NumberValue(round2(spec.Clamp(value)))
	}
	return values
}
