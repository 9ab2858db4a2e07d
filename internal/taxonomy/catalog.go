package taxonomy

// WaterQualityDeviceID is the well-known id of the single water-quality
// station. Downstream dashboards key on this exact value.
const WaterQualityDeviceID = "865989071557605"

// Default returns the built-in catalog of thirteen agricultural device types.
func Default() *Catalog {
	c, err := NewCatalog(defaultTypes())
	if err != nil {
		// The built-in specs are constants; a validation failure here is a
		// programming error.
		panic(err)
	}
	return c
}

func defaultTypes() []DeviceTypeSpec {
	return []DeviceTypeSpec{
		{
			Name: "weather-station", Label: "Weather Station", Icon: "🌤️", Count: 3,
			Parameters: []ParameterSpec{
				{Key: "temperature", Label: "Temperature", Unit: "°C", Min: 15, Max: 35, Shaping: ShapingThermal},
				{Key: "humidity", Label: "Humidity", Unit: "%", Min: 40, Max: 85, Shaping: ShapingHumidity},
				{Key: "wind_speed", Label: "Wind Speed", Unit: "m/s", Min: 0, Max: 8},
				{Key: "pressure", Label: "Air Pressure", Unit: "hPa", Min: 1000, Max: 1030},
				{Key: "rainfall", Label: "Rainfall", Unit: "mm", Min: 0, Max: 15},
			},
		},
		{
			Name: "soil-moisture", Label: "Soil Moisture Probe", Icon: "🌱", Count: 5,
			Parameters: []ParameterSpec{
				{Key: "soil_temp", Label: "Soil Temperature", Unit: "°C", Min: 12, Max: 28, Shaping: ShapingThermal},
				{Key: "soil_humidity", Label: "Soil Humidity", Unit: "%", Min: 25, Max: 75, Shaping: ShapingHumidity},
				{Key: "soil_ph", Label: "Soil pH", Unit: "pH", Min: 6.0, Max: 8.0},
				{Key: "ec", Label: "Conductivity", Unit: "mS/cm", Min: 0.8, Max: 2.5},
				{Key: "n_content", Label: "Nitrogen Content", Unit: "mg/kg", Min: 80, Max: 150},
			},
		},
		{
			Name: "water-quality", Label: "Water Quality Station", Icon: "💧", Count: 1,
			FixedID: WaterQualityDeviceID,
			Parameters: []ParameterSpec{
				{Key: "ph", Label: "pH", Unit: "pH", Min: 6.8, Max: 7.2},
				{Key: "turbidity", Label: "Turbidity", Unit: "NTU", Min: 15, Max: 25},
				{Key: "dissolved_oxygen", Label: "Dissolved Oxygen", Unit: "mg/L", Min: 6.5, Max: 8.5},
				{Key: "water_temp", Label: "Water Temperature", Unit: "°C", Min: 18, Max: 25},
				{Key: "conductivity", Label: "Conductivity", Unit: "μS/cm", Min: 180, Max: 220},
			},
		},
		{
			Name: "video", Label: "Video Camera", Icon: "📹", Count: 4,
			Parameters: []ParameterSpec{
				{Key: "online_status", Label: "Online Status", Min: 0, Max: 1},
				{Key: "resolution", Label: "Resolution", Values: []string{"1080P", "720P", "4K"}},
				{Key: "storage_usage", Label: "Storage Usage", Unit: "%", Min: 20, Max: 80},
			},
		},
		{
			Name: "switchgear", Label: "Switchgear Cabinet", Icon: "⚡", Count: 2,
			Parameters: []ParameterSpec{
				{Key: "voltage", Label: "Voltage", Unit: "V", Min: 220, Max: 240},
				{Key: "current", Label: "Current", Unit: "A", Min: 8, Max: 25},
				{Key: "power", Label: "Power", Unit: "kW", Min: 1.5, Max: 6.0},
				{Key: "frequency", Label: "Frequency", Unit: "Hz", Min: 49.8, Max: 50.2},
			},
		},
		{
			Name: "pest-trap", Label: "Pest Trap", Icon: "🐛", Count: 3,
			Parameters: []ParameterSpec{
				{Key: "pest_count", Label: "Pest Count", Unit: "pcs", Min: 0, Max: 50},
				{Key: "trap_temp", Label: "Trap Temperature", Unit: "°C", Min: 20, Max: 35},
				{Key: "light_intensity", Label: "Light Intensity", Unit: "%", Min: 0, Max: 100},
			},
		},
		{
			Name: "spore-counter", Label: "Spore Counter", Icon: "🦠", Count: 2,
			Parameters: []ParameterSpec{
				{Key: "spore_count", Label: "Spore Concentration", Unit: "pcs/m³", Min: 100, Max: 2000},
				{Key: "analysis_temp", Label: "Analysis Temperature", Unit: "°C", Min: 25, Max: 30},
				{Key: "sample_volume", Label: "Sample Volume", Unit: "L", Min: 10, Max: 100},
			},
		},
		{
			Name: "ambient", Label: "Ambient Sensor", Icon: "🌡️", Count: 4,
			Parameters: []ParameterSpec{
				{Key: "ambient_temp", Label: "Ambient Temperature", Unit: "°C", Min: 18, Max: 32, Shaping: ShapingThermal},
				{Key: "ambient_humidity", Label: "Ambient Humidity", Unit: "%", Min: 45, Max: 80, Shaping: ShapingHumidity},
				{Key: "co2", Label: "CO2 Concentration", Unit: "ppm", Min: 400, Max: 800},
				{Key: "light_intensity", Label: "Light Intensity", Unit: "lux", Min: 20000, Max: 80000},
			},
		},
		{
			Name: "irrigation", Label: "Smart Irrigation", Icon: "💦", Count: 6,
			Parameters: []ParameterSpec{
				{Key: "flow_rate", Label: "Flow Rate", Unit: "L/min", Min: 2, Max: 15},
				{Key: "pressure", Label: "Water Pressure", Unit: "MPa", Min: 0.2, Max: 0.8},
				{Key: "valve_status", Label: "Valve Status", Values: []string{"open", "closed"}},
				{Key: "water_level", Label: "Water Level", Unit: "%", Min: 30, Max: 95},
			},
		},
		{
			Name: "insect-lamp", Label: "Insect-Killer Lamp", Icon: "💡", Count: 4,
			Parameters: []ParameterSpec{
				{Key: "power_consumption", Label: "Power Consumption", Unit: "W", Min: 15, Max: 30},
				{Key: "working_hours", Label: "Working Hours", Unit: "h", Min: 6, Max: 12},
				{Key: "killed_insects", Label: "Killed Insects", Unit: "pcs", Min: 50, Max: 300},
			},
		},
		{
			Name: "gate", Label: "Integrated Gate", Icon: "🚪", Count: 2,
			Parameters: []ParameterSpec{
				{Key: "gate_opening", Label: "Gate Opening", Unit: "%", Min: 0, Max: 100},
				{Key: "water_flow", Label: "Water Flow", Unit: "m³/h", Min: 0, Max: 500},
				{Key: "upstream_level", Label: "Upstream Level", Unit: "m", Min: 2.0, Max: 4.5},
				{Key: "downstream_level", Label: "Downstream Level", Unit: "m", Min: 1.5, Max: 4.0},
			},
		},
		{
			Name: "flood-sensor", Label: "Flood Sensor", Icon: "🌊", Count: 3,
			Parameters: []ParameterSpec{
				{Key: "water_depth", Label: "Water Depth", Unit: "cm", Min: 0, Max: 80},
				{Key: "alert_level", Label: "Alert Level", Values: []string{"normal", "warning", "danger"}},
				{Key: "drain_status", Label: "Drain Status", Values: []string{"clear", "blocked"}},
			},
		},
		{
			Name: "growth-logger", Label: "Plant Growth Logger", Icon: "📊", Count: 3,
			Parameters: []ParameterSpec{
				{Key: "plant_height", Label: "Plant Height", Unit: "cm", Min: 15, Max: 120},
				{Key: "leaf_area", Label: "Leaf Area", Unit: "cm²", Min: 50, Max: 200},
				{Key: "growth_rate", Label: "Growth Rate", Unit: "cm/day", Min: 0.5, Max: 3.0},
				{Key: "chlorophyll", Label: "Chlorophyll", Unit: "SPAD", Min: 30, Max: 60},
			},
		},
	}
}
