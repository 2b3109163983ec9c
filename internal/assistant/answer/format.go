package answer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agrimitra-poc/server/internal/assistant/model"
)

// labels holds every user-facing string of one language.
type labels struct {
	weatherTitle       string // fmt verb: city
	temperature        string
	humidity           string
	rainfall           string
	weatherUnavailable string

	soilTitle    string // fmt verb: district
	soilType     string
	description  string
	suitable     string
	waterHolding string
	conditions   string
	region       string
	nutrients    string

	scientificName string
	soil           string
	ph             string
	cropTemp       string
	cropRain       string
	light          string
	climate        string
	fertilizer     string
	irrigation     string
	planting       string
	spacing        string
	seedRate       string
	harvest        string
	yield          string
	price          string

	soilClarify      string // fmt verb: examples
	cropClarify      string // fmt verb: examples
	fallback         string
	voiceUnavailable string
}

var englishLabels = labels{
	weatherTitle:       "Weather in %s:",
	temperature:        "Temperature: %g°C",
	humidity:           "Humidity: %g%%",
	rainfall:           "Rainfall: %g mm",
	weatherUnavailable: "Weather data is currently unavailable. Please try again later.",

	soilTitle:    "Soil information for %s:",
	soilType:     "Soil type: %s",
	description:  "Description: %s",
	suitable:     "Suitable crops: %s",
	waterHolding: "Water holding capacity: %s",
	conditions:   "Conditions: %s",
	region:       "Region: %s",
	nutrients:    "Nutrients: %s",

	scientificName: "Scientific name: %s",
	soil:           "Soil: %s",
	ph:             "pH: %s",
	cropTemp:       "Temperature: %s",
	cropRain:       "Rainfall: %s",
	light:          "Light: %s",
	climate:        "Climate: %s",
	fertilizer:     "Fertilizer: %s",
	irrigation:     "Irrigation: %s",
	planting:       "Planting season: %s",
	spacing:        "Spacing: %s",
	seedRate:       "Seed rate: %s",
	harvest:        "Harvest: %s",
	yield:          "Yield: %s",
	price:          "Price: %s",

	soilClarify:      "Which district would you like soil information for? For example: %s",
	cropClarify:      "Which crop would you like to know about? For example: %s",
	fallback:         "Sorry, I did not understand that. You can ask me about the weather, soil by district, or a crop.",
	voiceUnavailable: "Voice input is not available on this device, but you can keep typing your questions.",
}

var kannadaLabels = labels{
	weatherTitle:       "%s ಹವಾಮಾನ:",
	temperature:        "ತಾಪಮಾನ: %g°C",
	humidity:           "ಆರ್ದ್ರತೆ: %g%%",
	rainfall:           "ಮಳೆ: %g ಮಿ.ಮೀ",
	weatherUnavailable: "ಹವಾಮಾನ ಮಾಹಿತಿ ಸದ್ಯ ಲಭ್ಯವಿಲ್ಲ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",

	soilTitle:    "%s ಜಿಲ್ಲೆಯ ಮಣ್ಣಿನ ಮಾಹಿತಿ:",
	soilType:     "ಮಣ್ಣಿನ ಪ್ರಕಾರ: %s",
	description:  "ವಿವರಣೆ: %s",
	suitable:     "ಸೂಕ್ತ ಬೆಳೆಗಳು: %s",
	waterHolding: "ನೀರು ಹಿಡಿಯುವ ಸಾಮರ್ಥ್ಯ: %s",
	conditions:   "ಪರಿಸ್ಥಿತಿಗಳು: %s",
	region:       "ಪ್ರದೇಶ: %s",
	nutrients:    "ಪೋಷಕಾಂಶಗಳು: %s",

	scientificName: "ವೈಜ್ಞಾನಿಕ ಹೆಸರು: %s",
	soil:           "ಮಣ್ಣು: %s",
	ph:             "pH: %s",
	cropTemp:       "ತಾಪಮಾನ: %s",
	cropRain:       "ಮಳೆ: %s",
	light:          "ಬೆಳಕು: %s",
	climate:        "ಹವಾಗುಣ: %s",
	fertilizer:     "ಗೊಬ್ಬರ: %s",
	irrigation:     "ನೀರಾವರಿ: %s",
	planting:       "ಬಿತ್ತನೆ ಕಾಲ: %s",
	spacing:        "ಅಂತರ: %s",
	seedRate:       "ಬೀಜ ಪ್ರಮಾಣ: %s",
	harvest:        "ಕೊಯ್ಲು: %s",
	yield:          "ಇಳುವರಿ: %s",
	price:          "ಬೆಲೆ: %s",

	soilClarify:      "ಯಾವ ಜಿಲ್ಲೆಯ ಮಣ್ಣಿನ ಮಾಹಿತಿ ಬೇಕು? ಉದಾ: %s",
	cropClarify:      "ಯಾವ ಬೆಳೆಯ ಬಗ್ಗೆ ತಿಳಿಯಬೇಕು? ಉದಾ: %s",
	fallback:         "ಕ್ಷಮಿಸಿ, ನನಗೆ ಅರ್ಥವಾಗಲಿಲ್ಲ. ಹವಾಮಾನ, ಮಣ್ಣು ಅಥವಾ ಬೆಳೆಗಳ ಬಗ್ಗೆ ಕೇಳಬಹುದು.",
	voiceUnavailable: "ಈ ಸಾಧನದಲ್ಲಿ ಧ್ವನಿ ಇನ್‌ಪುಟ್ ಲಭ್ಯವಿಲ್ಲ, ಆದರೆ ನಿಮ್ಮ ಪ್ರಶ್ನೆಗಳನ್ನು ಟೈಪ್ ಮಾಡಬಹುದು.",
}

func labelsFor(lang model.Language) labels {
	if lang == model.Kannada {
		return kannadaLabels
	}
	return englishLabels
}

// Format renders an answer into the multi-line reply shown and spoken to the
// user. Absent fields produce no line at all; the formatter never emits
// placeholder text and never fails.
func Format(a Answer, lang model.Language) string {
	l := labelsFor(lang)

	switch v := a.(type) {
	case WeatherAnswer:
		return formatWeather(v.Snapshot, l)
	case SoilAnswer:
		return formatSoil(v.Record, lang, l)
	case SoilClarification:
		return fmt.Sprintf(l.soilClarify, strings.Join(v.Examples, ", "))
	case CropAnswer:
		return formatCrop(v.Record, lang, l)
	case CropClarification:
		return fmt.Sprintf(l.cropClarify, strings.Join(v.Examples, ", "))
	default:
		return l.fallback
	}
}

// FallbackReply is the fixed unknown-intent reply for a language, used both
// by the formatter and as the apology when the language-model fallback fails.
func FallbackReply(lang model.Language) string {
	return labelsFor(lang).fallback
}

// VoiceUnavailableNotice is shown once when the runtime has no speech
// capture capability.
func VoiceUnavailableNotice(lang model.Language) string {
	return labelsFor(lang).voiceUnavailable
}

func formatWeather(snap model.WeatherSnapshot, l labels) string {
	if !snap.Available() {
		return l.weatherUnavailable
	}
	lines := []string{
		fmt.Sprintf(l.weatherTitle, snap.City),
		fmt.Sprintf(l.temperature, snap.Temperature),
		fmt.Sprintf(l.humidity, snap.Humidity),
		fmt.Sprintf(l.rainfall, snap.Rainfall),
	}
	return strings.Join(lines, "\n")
}

func formatSoil(rec *model.SoilRecord, lang model.Language, l labels) string {
	lines := []string{fmt.Sprintf(l.soilTitle, rec.District)}

	soil, ok := rec.Primary()
	if !ok {
		return lines[0]
	}

	if name := bilingualName(soil.Name, soil.KannadaName, lang); name != "" {
		lines = append(lines, fmt.Sprintf(l.soilType, name))
	}
	lines = appendLine(lines, l.description, soil.Description)
	if len(soil.SuitableCrops) > 0 {
		lines = append(lines, fmt.Sprintf(l.suitable, strings.Join(soil.SuitableCrops, ", ")))
	}
	lines = appendLine(lines, l.waterHolding, soil.WaterHoldingCapacity)
	lines = appendLine(lines, l.conditions, soil.Conditions)
	lines = appendLine(lines, l.region, soil.Region)
	if len(soil.Nutrients) > 0 {
		lines = append(lines, fmt.Sprintf(l.nutrients, formatNutrients(soil.Nutrients)))
	}
	return strings.Join(lines, "\n")
}

// formatCrop renders a crop record in its fixed field order: name, scientific
// name, description, soil, pH, temperature, rainfall, light, climate,
// fertilizer, irrigation, planting, spacing, seed rate, harvest, yield,
// price, facts.
func formatCrop(rec *model.CropRecord, lang model.Language, l labels) string {
	lines := []string{bilingualName(rec.Name, rec.KannadaName, lang)}

	lines = appendLine(lines, l.scientificName, rec.ScientificName)
	lines = appendLine(lines, l.description, rec.Description)
	lines = appendLine(lines, l.soil, rec.SoilType)
	if gc := rec.GrowthConditions; gc != nil {
		lines = appendLine(lines, l.ph, gc.PH)
		lines = appendLine(lines, l.cropTemp, gc.Temperature)
		lines = appendLine(lines, l.cropRain, gc.Rainfall)
		lines = appendLine(lines, l.light, gc.Light)
		lines = appendLine(lines, l.climate, gc.Climate)
	}
	if f := rec.Fertilizer; f != nil {
		if npk := formatFertilizer(f); npk != "" {
			lines = append(lines, fmt.Sprintf(l.fertilizer, npk))
		}
	}
	lines = appendLine(lines, l.irrigation, rec.Irrigation)
	if pd := rec.PlantingDetails; pd != nil {
		lines = appendLine(lines, l.planting, pd.Season)
		lines = appendLine(lines, l.spacing, pd.Spacing)
		lines = appendLine(lines, l.seedRate, pd.SeedRate)
	}
	lines = appendLine(lines, l.harvest, rec.Harvesting)
	lines = appendLine(lines, l.yield, rec.Yield)
	lines = appendLine(lines, l.price, rec.EconomicValue)
	for _, fact := range rec.Facts {
		if fact != "" {
			lines = append(lines, "- "+fact)
		}
	}
	return strings.Join(lines, "\n")
}

// appendLine adds a formatted line only when the value is present.
func appendLine(lines []string, format, value string) []string {
	if value == "" {
		return lines
	}
	return append(lines, fmt.Sprintf(format, value))
}

// bilingualName renders "primary (localized)" with the session language's
// name first, degrading to whichever name exists.
func bilingualName(name, localized string, lang model.Language) string {
	first, second := name, localized
	if lang == model.Kannada && localized != "" {
		first, second = localized, name
	}
	if first == "" {
		return second
	}
	if second == "" {
		return first
	}
	return fmt.Sprintf("%s (%s)", first, second)
}

func formatFertilizer(f *model.Fertilizer) string {
	var parts []string
	if f.Nitrogen != "" {
		parts = append(parts, "N "+f.Nitrogen)
	}
	if f.Phosphorus != "" {
		parts = append(parts, "P "+f.Phosphorus)
	}
	if f.Potassium != "" {
		parts = append(parts, "K "+f.Potassium)
	}
	return strings.Join(parts, ", ")
}

func formatNutrients(nutrients map[string]any) string {
	keys := make([]string, 0, len(nutrients))
	for k := range nutrients {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %v", k, nutrients[k]))
	}
	return strings.Join(parts, ", ")
}
