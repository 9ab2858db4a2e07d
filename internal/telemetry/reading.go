package telemetry

import "time"

// Reading is the current parameter values of one online device.
type Reading struct {
	Timestamp time.Time        `json:"timestamp"`
	Values    map[string]Value `json:"values"`
}

// Value returns one sampled value by parameter key.
func (r *Reading) Value(key string) (Value, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Clone returns an independent copy; callers may jitter it without touching
// the stored baseline.
func (r *Reading) Clone() *Reading {
	if r == nil {
		return nil
	}
	out := &Reading{Timestamp: r.Timestamp, Values: make(map[string]Value, len(r.Values))}
	for k, v := range r.Values {
		out.Values[k] = v.clone()
	}
	return out
}

// HistoricalRecord is one synthesized historical sample of one device.
type HistoricalRecord struct {
	DeviceID   string           `json:"device_id"`
	DeviceType string           `json:"device_type"`
	Timestamp  time.Time        `json:"timestamp"`
	Values     map[string]Value `json:"values"`
}

// Clone returns an independent copy of the record.
func (r HistoricalRecord) Clone() HistoricalRecord {
	out := r
	out.Values = make(map[string]Value, len(r.Values))
	for k, v := range r.Values {
		out.Values[k] = v.clone()
	}
	return out
}
