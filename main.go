package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/agrimitra-poc/server/internal/assistant/answer"
	"github.com/agrimitra-poc/server/internal/assistant/fallback"
	"github.com/agrimitra-poc/server/internal/assistant/history"
	"github.com/agrimitra-poc/server/internal/assistant/knowledge"
	"github.com/agrimitra-poc/server/internal/assistant/model"
	"github.com/agrimitra-poc/server/internal/assistant/session"
	"github.com/agrimitra-poc/server/internal/assistant/speech"
	"github.com/agrimitra-poc/server/internal/assistant/weather"
	"github.com/agrimitra-poc/server/internal/core"
	logx "github.com/agrimitra-poc/server/pkg/logger"
	pkgredis "github.com/agrimitra-poc/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant example,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure
	Redis pkgredis.Config

	// LLM provider (used only when the fallback variant is enabled)
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Assistant configs
	Weather  weather.Config
	Fallback model.FallbackModelConfig
	Session  model.SessionConfig
	History  model.HistoryConfig
	Data     model.DataConfig
}

func main() {
	fmt.Println("Starting smart-farming assistant demo...")
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(os.Getenv("APP_ENV"))})

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	fmt.Println("Connected to Redis successfully")

	// ====================================================
	// Knowledge indexes, built once per session
	districts, err := knowledge.LoadDistrictIndex(envCfg.Data.SoilPath)
	if err != nil {
		log.Printf("Warning: soil dataset unavailable, soil queries will only clarify: %v", err)
	}
	crops, err := knowledge.LoadCropIndex(envCfg.Data.CropPath)
	if err != nil {
		log.Printf("Warning: crop dataset unavailable, crop queries will only clarify: %v", err)
	}

	// Weather snapshot, prefetched by location with default-city failover
	weatherClient := weather.NewClient(envCfg.Weather)
	cache := &weather.Cache{}
	if snap, werr := weatherClient.ByLocation(ctx, weather.DefaultLocation); werr == nil {
		cache.Store(snap)
	}

	// Optional language-model fallback variant
	var responder answer.Responder
	if envCfg.Fallback.Enabled {
		svc, ferr := fallback.New(ctx, envCfg.APIKey, envCfg.BaseURL, envCfg.Fallback)
		if ferr != nil {
			log.Printf("Warning: fallback model unavailable, unknown queries get the fixed reply: %v", ferr)
		} else {
			responder = svc
		}
	}

	pipeline := answer.NewPipeline(districts, crops, cache, responder)

	revealInterval, err := time.ParseDuration(envCfg.Session.RevealInterval)
	if err != nil {
		log.Fatalf("Invalid SESSION_REVEAL_INTERVAL '%s': %v", envCfg.Session.RevealInterval, err)
	}

	var voice *speech.StubInput
	sess := session.New(pipeline,
		func(ev speech.Events) speech.Input {
			voice = speech.NewStubInput(ev)
			return voice
		},
		speech.LogOutput{},
		session.Config{
			RevealInterval: revealInterval,
			Language:       model.ParseLanguage(envCfg.Session.Language),
		})

	testQueries := []struct {
		description string
		query       string
		language    model.Language
	}{
		{
			description: "Weather inquiry using the cached snapshot",
			query:       "How is the weather today?",
			language:    model.English,
		},
		{
			description: "Soil lookup by district marker phrase",
			query:       "Tell me about the soil of Mysuru",
			language:    model.English,
		},
		{
			description: "Crop details in Kannada",
			query:       "ರಾಗಿ ಬೆಳೆ ಬಗ್ಗೆ ಹೇಳಿ",
			language:    model.Kannada,
		},
		{
			description: "Clarification when no district resolves",
			query:       "what soil should I use",
			language:    model.English,
		},
		{
			description: "Unknown intent falls through",
			query:       "sing me a song",
			language:    model.English,
		},
	}

	for i, test := range testQueries {
		fmt.Printf("\nTest %d: %s\n", i+1, test.description)
		fmt.Printf("Query: %q\n", test.query)

		sess.SetLanguage(test.language)
		task := sess.HandleText(ctx, test.query)
		<-task.Done()

		msgs := sess.Messages()
		fmt.Printf("Reply %d:\n%s\n", i+1, msgs[len(msgs)-1].Text)
		fmt.Println("─────────────────────────────────────────────")
	}

	// One voice-driven turn through the capture toggle
	fmt.Println("\nVoice turn: toggling capture and speaking a query")
	if sess.ToggleListening() {
		voice.EmitFinal("soil of Belagavi")
		msgs := sess.Messages()
		fmt.Printf("Transcript fed: %q\n", msgs[len(msgs)-2].Text)
	}

	// Persisted lookup history, deduplicated across sessions
	soilHistory := history.NewService(history.NewRedisStore(rdb), envCfg.History.KeyPrefix+":soil")
	if err := soilHistory.Load(ctx); err != nil {
		log.Printf("Warning: could not load soil history: %v", err)
	}
	for _, entry := range []history.Entry{
		{Name: "Red Soil", KannadaName: "ಕೆಂಪು ಮಣ್ಣು"},
		{Name: "Red Soil", KannadaName: "ಕೆಂಪು ಮಣ್ಣು"},
	} {
		if err := soilHistory.Add(ctx, entry); errors.Is(err, history.ErrDuplicate) {
			fmt.Printf("Already in your history: %s\n", entry.Name)
		} else if err != nil {
			log.Printf("Warning: could not persist history entry: %v", err)
		}
	}
	fmt.Printf("Soil lookups remembered: %d\n", len(soilHistory.Entries()))

	fmt.Println("\nAll assistant demo turns completed!")
}
