package answer

import (
	"github.com/agrimitra-poc/server/internal/assistant/knowledge"
	"github.com/agrimitra-poc/server/internal/assistant/model"
	"github.com/agrimitra-poc/server/internal/assistant/nlu"
)

// maxExamples caps how many index names a clarification reply suggests.
const maxExamples = 8

// Resolve maps an intent and the user text onto a structured answer. It is a
// pure function of its inputs: weather queries use the cached snapshot
// regardless of the message content, soil and crop queries extract their
// entity from the text and fall back to a clarification when none resolves.
// Session state and history are never touched here.
func Resolve(intent model.Intent, text string, districts *knowledge.DistrictIndex, crops *knowledge.CropIndex, snapshot model.WeatherSnapshot) Answer {
	switch intent {
	case model.IntentWeather:
		return WeatherAnswer{Snapshot: snapshot}

	case model.IntentSoil:
		if key, ok := nlu.ExtractDistrict(text, districts.Keys()); ok {
			if rec, found := districts.Lookup(key); found {
				return SoilAnswer{Record: rec}
			}
		}
		return SoilClarification{Examples: districts.Examples(maxExamples)}

	case model.IntentCrop:
		if key, ok := nlu.ExtractCrop(text, crops.Keys()); ok {
			if rec, found := crops.Lookup(key); found {
				return CropAnswer{Record: rec}
			}
		}
		return CropClarification{Examples: crops.Examples(maxExamples)}

	default:
		return FallbackAnswer{}
	}
}
