package domain

import "time"

// ForecastDay is one day of a district weather forecast.
type ForecastDay struct {
	Date       time.Time `json:"date"`
	Label      string    `json:"label"`
	Condition  string    `json:"condition"`
	TempMinC   float64   `json:"temp_min_c"`
	TempMaxC   float64   `json:"temp_max_c"`
	RainfallMM float64   `json:"rainfall_mm"`
}

// RainRisk buckets a day's rainfall: above 30mm is high, above 10mm medium.
type RainRisk string

const (
	RainLow    RainRisk = "low"
	RainMedium RainRisk = "medium"
	RainHigh   RainRisk = "high"
)

const (
	HeavyRainfallMM    = 30
	ModerateRainfallMM = 10
)

func RainRiskFor(mm float64) RainRisk {
	switch {
	case mm > HeavyRainfallMM:
		return RainHigh
	case mm > ModerateRainfallMM:
		return RainMedium
	default:
		return RainLow
	}
}
