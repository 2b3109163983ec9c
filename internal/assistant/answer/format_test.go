package answer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimitra-poc/server/internal/assistant/model"
)

func TestFormatCrop(t *testing.T) {
	t.Run("absent optional fields produce no line", func(t *testing.T) {
		rec := &model.CropRecord{Name: "Cotton", KannadaName: "ಹತ್ತಿ", SoilType: "Black Soil"}
		out := Format(CropAnswer{Record: rec}, model.English)

		lines := strings.Split(out, "\n")
		assert.Equal(t, []string{"Cotton (ಹತ್ತಿ)", "Soil: Black Soil"}, lines)
		assert.NotContains(t, out, "Scientific name")
		assert.NotContains(t, out, "undefined")
		assert.NotContains(t, out, "null")
		assert.NotContains(t, out, "<nil>")
	})

	t.Run("full record renders fields in fixed order", func(t *testing.T) {
		rec := &model.CropRecord{
			Name:           "Ragi",
			KannadaName:    "ರಾಗಿ",
			ScientificName: "Eleusine coracana",
			Description:    "Hardy finger millet.",
			SoilType:       "Red Soil",
			GrowthConditions: &model.GrowthConditions{
				PH:          "5.5 - 7.5",
				Temperature: "20 - 30°C",
				Rainfall:    "500 - 900 mm",
				Light:       "Full sun",
				Climate:     "Semi-arid",
			},
			Fertilizer: &model.Fertilizer{Nitrogen: "50 kg/ha", Phosphorus: "40 kg/ha", Potassium: "25 kg/ha"},
			Irrigation: "Mostly rainfed",
			PlantingDetails: &model.PlantingDetails{
				Season:   "June - August",
				Spacing:  "22.5 x 10 cm",
				SeedRate: "10 kg/ha",
			},
			Harvesting:    "110 - 120 days",
			Yield:         "20 - 25 quintals/ha",
			EconomicValue: "₹3,800 per quintal",
			Facts:         []string{"Stores for decades."},
		}
		out := Format(CropAnswer{Record: rec}, model.English)
		lines := strings.Split(out, "\n")

		require.Len(t, lines, 18)
		assert.Equal(t, "Ragi (ರಾಗಿ)", lines[0])
		assert.Equal(t, "Scientific name: Eleusine coracana", lines[1])
		assert.Equal(t, "Soil: Red Soil", lines[3])
		assert.Equal(t, "pH: 5.5 - 7.5", lines[4])
		assert.Equal(t, "Fertilizer: N 50 kg/ha, P 40 kg/ha, K 25 kg/ha", lines[9])
		assert.Equal(t, "Planting season: June - August", lines[11])
		assert.Equal(t, "- Stores for decades.", lines[17])
	})

	t.Run("kannada rendering leads with the kannada name", func(t *testing.T) {
		rec := &model.CropRecord{Name: "Ragi", KannadaName: "ರಾಗಿ", SoilType: "Red Soil"}
		out := Format(CropAnswer{Record: rec}, model.Kannada)
		lines := strings.Split(out, "\n")
		assert.Equal(t, "ರಾಗಿ (Ragi)", lines[0])
		assert.Equal(t, "ಮಣ್ಣು: Red Soil", lines[1])
	})
}

func TestFormatSoil(t *testing.T) {
	rec := &model.SoilRecord{
		District: "Mysuru",
		SoilTypes: []model.SoilType{{
			Name:          "Red Soil",
			KannadaName:   "ಕೆಂಪು ಮಣ್ಣು",
			SuitableCrops: []string{"Ragi", "Groundnut"},
			Nutrients:     map[string]any{"nitrogen": 42, "phosphorus": 28},
		}},
	}

	t.Run("lists suitable crops", func(t *testing.T) {
		out := Format(SoilAnswer{Record: rec}, model.English)
		assert.Contains(t, out, "Soil information for Mysuru:")
		assert.Contains(t, out, "Suitable crops: Ragi, Groundnut")
	})

	t.Run("nutrients render sorted", func(t *testing.T) {
		out := Format(SoilAnswer{Record: rec}, model.English)
		assert.Contains(t, out, "Nutrients: nitrogen 42, phosphorus 28")
	})

	t.Run("absent fields are omitted", func(t *testing.T) {
		out := Format(SoilAnswer{Record: rec}, model.English)
		assert.NotContains(t, out, "Description")
		assert.NotContains(t, out, "Water holding")
	})

	t.Run("record with no soil types keeps the title only", func(t *testing.T) {
		out := Format(SoilAnswer{Record: &model.SoilRecord{District: "Hassan"}}, model.English)
		assert.Equal(t, "Soil information for Hassan:", out)
	})
}

func TestFormatWeather(t *testing.T) {
	t.Run("renders the snapshot", func(t *testing.T) {
		snap := model.WeatherSnapshot{Temperature: 28, Humidity: 70, Rainfall: 5, City: "Bengaluru"}
		out := Format(WeatherAnswer{Snapshot: snap}, model.English)
		assert.Contains(t, out, "Bengaluru")
		assert.Contains(t, out, "28")
		assert.Contains(t, out, "70")
		assert.Contains(t, out, "5 mm")
	})

	t.Run("sentinel snapshot apologizes", func(t *testing.T) {
		out := Format(WeatherAnswer{}, model.English)
		assert.Equal(t, "Weather data is currently unavailable. Please try again later.", out)
	})

	t.Run("kannada labels", func(t *testing.T) {
		snap := model.WeatherSnapshot{Temperature: 28, Humidity: 70, City: "Bengaluru"}
		out := Format(WeatherAnswer{Snapshot: snap}, model.Kannada)
		assert.Contains(t, out, "ತಾಪಮಾನ: 28°C")
	})
}

func TestFormatClarifications(t *testing.T) {
	out := Format(SoilClarification{Examples: []string{"Mysuru", "Belagavi"}}, model.English)
	assert.Contains(t, out, "Mysuru, Belagavi")

	out = Format(CropClarification{Examples: []string{"Ragi"}}, model.Kannada)
	assert.Contains(t, out, "ಉದಾ: Ragi")
}
