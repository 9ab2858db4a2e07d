package fleet

import (
	"fmt"
	"math/rand"
	"time"

	"agrifleet/internal/taxonomy"
)

const (
	// firstSequentialID seeds the zero-padded counter shared by every type
	// that does not carry a fixed id.
	firstSequentialID = 1001

	dateLayout = "2006-01-02"
)

// Config holds the fleet shaping constants. The defaults mirror the observed
// demo site: a ~1 km scatter around the Shenzhen research campus and a 3:1
// online bias.
type Config struct {
	Center        Location
	Spread        float64
	OnlineWeight  int
	OfflineWeight int

	InstallMinDays int
	InstallMaxDays int
	UpdateMin      time.Duration
	UpdateMax      time.Duration
}

// DefaultConfig returns the observed generation constants.
func DefaultConfig() Config {
	return Config{
		Center:         Location{Lat: 22.59163, Lng: 113.972654},
		Spread:         0.01,
		OnlineWeight:   3,
		OfflineWeight:  1,
		InstallMinDays: 30,
		InstallMaxDays: 365,
		UpdateMin:      time.Minute,
		UpdateMax:      30 * time.Minute,
	}
}

// Generate expands the catalog into concrete devices. Types are visited in
// catalog order and instances are numbered from 1, so a seeded RNG and a fixed
// now yield a byte-identical fleet.
func Generate(catalog *taxonomy.Catalog, cfg Config, rng *rand.Rand, now time.Time) ([]Device, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrInvalidTaxonomy)
	}
	if cfg.OnlineWeight <= 0 || cfg.OfflineWeight < 0 {
		return nil, fmt.Errorf("%w: status weights %d:%d", ErrInvalidTaxonomy, cfg.OnlineWeight, cfg.OfflineWeight)
	}

	var devices []Device
	nextID := firstSequentialID
	for _, spec := range catalog.Types() {
		if spec.Count <= 0 {
			return nil, fmt.Errorf("%w: device type %q has count %d", ErrInvalidTaxonomy, spec.Name, spec.Count)
		}
		for i := 0; i < spec.Count; i++ {
			id := spec.FixedID
			if id == "" {
				id = fmt.Sprintf("%012d", nextID)
				nextID++
			}
			devices = append(devices, Device{
				ID:   id,
				Name: fmt.Sprintf("%s %s-%02d", spec.Icon, spec.Label, i+1),
				Type: spec.Name,
				Icon: spec.Icon,
				Location: Location{
					Lat: cfg.Center.Lat + uniform(rng, -cfg.Spread, cfg.Spread),
					Lng: cfg.Center.Lng + uniform(rng, -cfg.Spread, cfg.Spread),
				},
				Status:      drawStatus(rng, cfg.OnlineWeight, cfg.OfflineWeight),
				InstallDate: now.AddDate(0, 0, -intBetween(rng, cfg.InstallMinDays, cfg.InstallMaxDays)).Format(dateLayout),
				LastUpdate:  now.Add(-durationBetween(rng, cfg.UpdateMin, cfg.UpdateMax)).Truncate(time.Second),
				Parameters:  spec.Parameters,
			})
		}
	}
	return devices, nil
}

func drawStatus(rng *rand.Rand, online, offline int) Status {
	if rng.Intn(online+offline) < online {
		return StatusOnline
	}
	return StatusOffline
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func intBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

func durationBetween(rng *rand.Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rng.Int63n(int64(max-min+1)))
}
