package taxonomy

import "fmt"

// ShapingRole tags a numeric parameter with the diurnal curve applied to its
// synthesized history. Thermal parameters peak in the afternoon; humidity
// parameters move in anti-phase with them.
type ShapingRole string

const (
	ShapingNone     ShapingRole = ""
	ShapingThermal  ShapingRole = "thermal"
	ShapingHumidity ShapingRole = "humidity"
)

// ParameterSpec describes one observed parameter of a device type. A spec is
// either numeric (Min/Max range with a unit) or enumerated (closed Values set);
// never both.
type ParameterSpec struct {
	Key     string      `json:"key"`
	Label   string      `json:"label"`
	Unit    string      `json:"unit,omitempty"`
	Min     float64     `json:"min,omitempty"`
	Max     float64     `json:"max,omitempty"`
	Values  []string    `json:"values,omitempty"`
	Shaping ShapingRole `json:"shaping,omitempty"`
}

// IsEnum reports whether the spec draws from a closed value set.
func (p ParameterSpec) IsEnum() bool { return len(p.Values) > 0 }

// Width returns the numeric range width.
func (p ParameterSpec) Width() float64 { return p.Max - p.Min }

// Clamp forces a value into the [Min, Max] range.
func (p ParameterSpec) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

func (p ParameterSpec) validate() error {
	if p.Key == "" {
		return fmt.Errorf("%w: parameter without key", ErrInvalidSpec)
	}
	if p.IsEnum() {
		for _, v := range p.Values {
			if v == "" {
				return fmt.Errorf("%w: parameter %q has empty enum value", ErrInvalidSpec, p.Key)
			}
		}
		return nil
	}
	if p.Min >= p.Max {
		return fmt.Errorf("%w: parameter %q range [%v, %v]", ErrInvalidSpec, p.Key, p.Min, p.Max)
	}
	return nil
}

// DeviceTypeSpec describes one device type in the catalog: its display
// identity, how many instances a generation run creates, and the ordered
// parameter schema every instance carries. FixedID pins the id of the single
// instance of a type to a well-known value instead of the sequential counter.
type DeviceTypeSpec struct {
	Name       string          `json:"name"`
	Label      string          `json:"label"`
	Icon       string          `json:"icon"`
	Count      int             `json:"count"`
	FixedID    string          `json:"fixed_id,omitempty"`
	Parameters []ParameterSpec `json:"parameters"`
}

// Parameter returns the spec for a parameter key.
func (t DeviceTypeSpec) Parameter(key string) (ParameterSpec, bool) {
	for _, p := range t.Parameters {
		if p.Key == key {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

func (t DeviceTypeSpec) validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: device type without name", ErrInvalidSpec)
	}
	if t.Count <= 0 {
		return fmt.Errorf("%w: device type %q has count %d", ErrInvalidSpec, t.Name, t.Count)
	}
	if t.FixedID != "" && t.Count != 1 {
		return fmt.Errorf("%w: device type %q has a fixed id but count %d", ErrInvalidSpec, t.Name, t.Count)
	}
	if len(t.Parameters) == 0 {
		return fmt.Errorf("%w: device type %q has no parameters", ErrInvalidSpec, t.Name)
	}
	for _, p := range t.Parameters {
		if err := p.validate(); err != nil {
			return fmt.Errorf("device type %q: %w", t.Name, err)
		}
	}
	return nil
}

// Catalog is the immutable taxonomy of device types, in declaration order.
type Catalog struct {
	types  []DeviceTypeSpec
	byName map[string]int
}

// NewCatalog validates the specs and builds a catalog. Order is preserved so
// generation runs are reproducible.
func NewCatalog(types []DeviceTypeSpec) (*Catalog, error) {
	c := &Catalog{
		types:  make([]DeviceTypeSpec, len(types)),
		byName: make(map[string]int, len(types)),
	}
	copy(c.types, types)
	for i, t := range c.types {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate device type %q", ErrInvalidSpec, t.Name)
		}
		c.byName[t.Name] = i
	}
	return c, nil
}

// Types returns the device type specs in catalog order.
func (c *Catalog) Types() []DeviceTypeSpec {
	out := make([]DeviceTypeSpec, len(c.types))
	copy(out, c.types)
	return out
}

// TypeByName looks up one device type spec.
func (c *Catalog) TypeByName(name string) (DeviceTypeSpec, error) {
	i, ok := c.byName[name]
	if !ok {
		return DeviceTypeSpec{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.types[i], nil
}

// Len returns the number of device types.
func (c *Catalog) Len() int { return len(c.types) }
