package model

// ================ Config ================
type SessionConfig struct {
	RevealInterval string `envconfig:"SESSION_REVEAL_INTERVAL" default:"30ms"`
	Language       string `envconfig:"SESSION_LANGUAGE" default:"en"`
}

type HistoryConfig struct {
	KeyPrefix string `envconfig:"HISTORY_KEY_PREFIX" default:"agrimitra:history"`
}

type FallbackModelConfig struct {
	Enabled     bool    `envconfig:"FALLBACK_ENABLED" default:"false"`
	Model       string  `envconfig:"FALLBACK_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"FALLBACK_MAX_TOKENS" default:"1000"`
	Temperature float32 `envconfig:"FALLBACK_TEMPERATURE" default:"0.4"`
}

type DataConfig struct {
	SoilPath string `envconfig:"DATA_SOIL_PATH" default:"data/soilData.json"`
	CropPath string `envconfig:"DATA_CROP_PATH" default:"data/cropData.json"`
}
