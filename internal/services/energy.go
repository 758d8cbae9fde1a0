package services

// Calibration constants for the reference airframe. The consumption model
// was fitted with payloads in grams and distances in kilometers.
const (
	DefaultEmptyOverheadGrams = 512
	DefaultConsumptionFactor  = 36739
)

// EnergyModel computes the battery fraction consumed by flying a distance
// while carrying a payload. It is monotonically non-decreasing in both
// arguments and pure. Inputs are assumed non-negative; negative inputs are a
// caller contract violation.
type EnergyModel struct {
	EmptyOverheadGrams float64
	ConsumptionFactor  float64
}

func DefaultEnergyModel() EnergyModel {
	return EnergyModel{
		EmptyOverheadGrams: DefaultEmptyOverheadGrams,
		ConsumptionFactor:  DefaultConsumptionFactor,
	}
}

// FractionRequired returns the share of a full battery consumed by flying
// distanceKm while carrying payloadGrams. A value of 1 is the entire battery.
func (m EnergyModel) FractionRequired(payloadGrams, distanceKm float64) float64 {
	return distanceKm * (payloadGrams + m.EmptyOverheadGrams) / m.ConsumptionFactor
}
