package snapshot

import (
	"fmt"
	"sort"
	"time"

	"agrifleet/internal/fleet"
	"agrifleet/internal/telemetry"
)

// The query surface is what presentation layers call. Every result is an
// independent copy: readers jitter or sort their view freely without
// corrupting the stored baseline.

// DevicesByType returns the devices of one type, or all devices when typeName
// is empty, in generation order.
func (s *Snapshot) DevicesByType(typeName string) []fleet.Device {
	out := make([]fleet.Device, 0, len(s.Devices))
	for _, d := range s.Devices {
		if typeName == "" || d.Type == typeName {
			out = append(out, d.Clone())
		}
	}
	return out
}

// DeviceByID returns one device.
func (s *Snapshot) DeviceByID(id string) (fleet.Device, error) {
	for _, d := range s.Devices {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return fleet.Device{}, fmt.Errorf("%w: %q", ErrDeviceNotFound, id)
}

// CurrentReading returns the latest reading of one device, or nil when the
// device is offline or unknown.
func (s *Snapshot) CurrentReading(deviceID string) *telemetry.Reading {
	reading, ok := s.Current[deviceID]
	if !ok {
		return nil
	}
	return reading.Clone()
}

// HistoricalWindow returns the device's records from the trailing window of
// the given length, sorted by timestamp ascending. The window is anchored on
// the generation timestamp so a reloaded snapshot answers identically.
func (s *Snapshot) HistoricalWindow(deviceID string, hours int) []telemetry.HistoricalRecord {
	cutoff := s.windowAnchor().Add(-time.Duration(hours) * time.Hour)
	var out []telemetry.HistoricalRecord
	for _, record := range s.History {
		if record.DeviceID != deviceID || record.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, record.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

func (s *Snapshot) windowAnchor() time.Time {
	if !s.Stats.GeneratedAt.IsZero() {
		return s.Stats.GeneratedAt
	}
	var newest time.Time
	for _, record := range s.History {
		if record.Timestamp.After(newest) {
			newest = record.Timestamp
		}
	}
	return newest
}
