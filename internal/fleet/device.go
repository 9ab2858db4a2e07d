package fleet

import (
	"time"

	"agrifleet/internal/taxonomy"
)

// Status is the reachability state of a device at generation time.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Location is a WGS84 point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Device is one generated fleet member. Devices are immutable after a
// generation run; refreshing the fleet replaces them wholesale.
type Device struct {
	ID          string                   `json:"device_id"`
	Name        string                   `json:"device_name"`
	Type        string                   `json:"device_type"`
	Icon        string                   `json:"icon"`
	Location    Location                 `json:"location"`
	Status      Status                   `json:"status"`
	InstallDate string                   `json:"install_date"`
	LastUpdate  time.Time                `json:"last_update"`
	Parameters  []taxonomy.ParameterSpec `json:"parameters"`
}

// Online reports whether the device produces current readings.
func (d Device) Online() bool { return d.Status == StatusOnline }

// Clone returns an independent copy of the device.
func (d Device) Clone() Device {
	out := d
	out.Parameters = make([]taxonomy.ParameterSpec, len(d.Parameters))
	copy(out.Parameters, d.Parameters)
	for i, p := range d.Parameters {
		if len(p.Values) > 0 {
			values := make([]string, len(p.Values))
			copy(values, p.Values)
			out.Parameters[i].Values = values
		}
	}
	return out
}
