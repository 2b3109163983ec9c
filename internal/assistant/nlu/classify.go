package nlu

import (
	"strings"

	"github.com/agrimitra-poc/server/internal/assistant/model"
)

// Bilingual keyword sets. Kannada speakers ask about ಹವಾಮಾನ/ವಾತಾವರಣ
// (weather), ಮಣ್ಣು (soil) and ಬೆಳೆ (crop) the same way English speakers use
// the bare nouns, so the classifier carries both sets.
var (
	weatherKeywords = []string{"weather", "ಹವಾಮಾನ", "ವಾತಾವರಣ"}
	soilKeywords    = []string{"soil", "ಮಣ್ಣು", "ಮಣ್ಣಿನ"}
	cropKeywords    = []string{"crop", "crops", "ಬೆಳೆ", "ಬೆಳೆಗಳು"}
)

// Classify buckets a user query into one of the four intents. The priority
// order is fixed: weather beats soil beats crop beats unknown, so a message
// mentioning both "weather" and "soil" is a weather query. Soil and crop
// intents also trigger without their keyword when a district or crop entity
// is extractable from the text.
func Classify(text string, districtKeys, cropKeys []string) model.Intent {
	norm := Normalize(text)

	if containsAny(norm, weatherKeywords) {
		return model.IntentWeather
	}
	if containsAny(norm, soilKeywords) {
		return model.IntentSoil
	}
	if _, ok := ExtractDistrict(norm, districtKeys); ok {
		return model.IntentSoil
	}
	if containsAny(norm, cropKeywords) {
		return model.IntentCrop
	}
	if _, ok := ExtractCrop(norm, cropKeys); ok {
		return model.IntentCrop
	}
	return model.IntentUnknown
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
