package model

// SoilType describes one soil variety found in a district. Nutrient values
// arrive as either numbers or strings depending on the dataset vintage, so the
// mapping keeps them untyped and the formatter renders whatever is present.
type SoilType struct {
	Name                 string         `json:"name"`
	KannadaName          string         `json:"kannadaName"`
	Description          string         `json:"description"`
	SuitableCrops        []string       `json:"suitableCrops"`
	WaterHoldingCapacity string         `json:"waterHoldingCapacity"`
	Nutrients            map[string]any `json:"nutrients"`
	Conditions           string         `json:"conditions"`
	Region               string         `json:"region"`
}

// SoilRecord groups the soil types of a single district.
type SoilRecord struct {
	District  string     `json:"district"`
	SoilTypes []SoilType `json:"soilTypes"`
}

// Primary returns the first soil type, which the resolver reports when a
// district carries several.
func (r *SoilRecord) Primary() (SoilType, bool) {
	if len(r.SoilTypes) == 0 {
		return SoilType{}, false
	}
	return r.SoilTypes[0], true
}

// GrowthConditions are the agronomic ranges a crop tolerates.
type GrowthConditions struct {
	PH          string `json:"ph"`
	Temperature string `json:"temperature"`
	Rainfall    string `json:"rainfall"`
	Light       string `json:"light"`
	Climate     string `json:"climate"`
}

// Fertilizer holds the recommended N-P-K application for a crop.
type Fertilizer struct {
	Nitrogen   string `json:"nitrogen"`
	Phosphorus string `json:"phosphorus"`
	Potassium  string `json:"potassium"`
}

// PlantingDetails describe how a crop is sown.
type PlantingDetails struct {
	Season   string `json:"season"`
	Spacing  string `json:"spacing"`
	SeedRate string `json:"seedRate"`
}

// CropRecord is one crop entry from the crop dataset. Everything beyond the
// two names is optional; consumers must treat absent fields as absent rather
// than erroring.
type CropRecord struct {
	Name             string            `json:"name"`
	KannadaName      string            `json:"kannadaName"`
	ScientificName   string            `json:"scientificName"`
	Description      string            `json:"description"`
	SoilType         string            `json:"soilType"`
	GrowthConditions *GrowthConditions `json:"growthConditions"`
	Fertilizer       *Fertilizer       `json:"fertilizer"`
	Irrigation       string            `json:"irrigation"`
	PlantingDetails  *PlantingDetails  `json:"plantingDetails"`
	Harvesting       string            `json:"harvesting"`
	Yield            string            `json:"yield"`
	EconomicValue    string            `json:"economicValue"`
	Facts            []string          `json:"facts"`
}

// WeatherSnapshot is the latest known reading from the weather service.
// No history is retained; a new fetch replaces the previous value.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	City        string  `json:"city"`
}

// Available reports whether the snapshot carries real data. A zero-value
// snapshot is the sentinel the weather client returns on failure.
func (w WeatherSnapshot) Available() bool {
	return w.City != ""
}
