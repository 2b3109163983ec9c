package weather

import "math"

// Derived agronomy figures for the dashboard. The formulas are the simple
// field approximations farmers actually see on the weather page, not research
// grade models.

// DewPoint estimates the dew point in °C from temperature and relative
// humidity.
func DewPoint(tempC, humidity float64) float64 {
	return tempC - (100-humidity)/5
}

// Evapotranspiration estimates daily reference evapotranspiration (mm/day)
// with the Hargreaves approximation over the day's temperature spread.
func Evapotranspiration(tempC, tempMax, tempMin float64) float64 {
	spread := tempMax - tempMin
	if spread < 0 {
		spread = 0
	}
	return 0.0023 * (tempC + 17.8) * math.Sqrt(spread) / 10
}

// SoilMoistureBand maps relative humidity onto the coarse moisture band shown
// on the dashboard.
func SoilMoistureBand(humidity float64) string {
	switch {
	case humidity > 70:
		return "High"
	case humidity > 40:
		return "Moderate"
	default:
		return "Low"
	}
}
