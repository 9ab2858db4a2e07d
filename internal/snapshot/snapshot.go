package snapshot

import (
	"time"

	"agrifleet/internal/fleet"
	"agrifleet/internal/simcard"
	"agrifleet/internal/telemetry"
)

// Stats summarizes a snapshot. Every field is derived from the snapshot body
// at save time; stats are never hand-edited.
type Stats struct {
	TotalDevices  int       `json:"total_devices"`
	OnlineDevices int       `json:"online_devices"`
	DeviceTypes   int       `json:"device_types"`
	DataPoints    int       `json:"data_points"`
	SimCards      int       `json:"sim_cards"`
	GenerationID  string    `json:"generation_id"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Snapshot is the complete output of one generation run. It is read-only once
// persisted; a new run replaces it wholesale.
type Snapshot struct {
	Devices  []fleet.Device               `json:"devices"`
	Current  map[string]telemetry.Reading `json:"current"`
	History  []telemetry.HistoricalRecord `json:"history"`
	SimCards []simcard.SimCard            `json:"sim_cards"`
	Stats    Stats                        `json:"stats"`
}

// ComputeStats derives the summary counts from the snapshot body, keeping the
// generation identity already stamped on it.
func (s *Snapshot) ComputeStats() Stats {
	types := make(map[string]struct{}, len(s.Devices))
	online := 0
	for _, d := range s.Devices {
		types[d.Type] = struct{}{}
		if d.Online() {
			online++
		}
	}
	return Stats{
		TotalDevices:  len(s.Devices),
		OnlineDevices: online,
		DeviceTypes:   len(types),
		DataPoints:    len(s.History),
		SimCards:      len(s.SimCards),
		GenerationID:  s.Stats.GenerationID,
		GeneratedAt:   s.Stats.GeneratedAt,
	}
}
