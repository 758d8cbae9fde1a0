package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"drone-dispatch-service/internal/services"
)

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Calibration holds the tunable energy-model constants. Zero fields fall back
// to the reference airframe defaults, so a partial file is fine.
type Calibration struct {
	EmptyOverheadGrams float64 `yaml:"empty_overhead_grams"`
	ConsumptionFactor  float64 `yaml:"consumption_factor"`
}

// LoadCalibration reads a YAML calibration file into an EnergyModel. An empty
// path yields the defaults without touching the filesystem.
func LoadCalibration(path string) (services.EnergyModel, error) {
	model := services.DefaultEnergyModel()
	if path == "" {
		return model, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return services.EnergyModel{}, fmt.Errorf("load calibration: read %q: %w", path, err)
	}

	var cal Calibration
	if err := yaml.Unmarshal(raw, &cal); err != nil {
		return services.EnergyModel{}, fmt.Errorf("load calibration: parse %q: %w", path, err)
	}

	if cal.EmptyOverheadGrams < 0 || cal.ConsumptionFactor < 0 {
		return services.EnergyModel{}, fmt.Errorf("load calibration: %q: constants must be non-negative", path)
	}
	if cal.EmptyOverheadGrams > 0 {
		model.EmptyOverheadGrams = cal.EmptyOverheadGrams
	}
	if cal.ConsumptionFactor > 0 {
		model.ConsumptionFactor = cal.ConsumptionFactor
	}
	return model, nil
}
