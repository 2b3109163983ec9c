// Package fallback holds the language-model escape hatch: queries the
// keyword classifier cannot place are handed to a Gemini chat model with a
// farming system instruction. The model is a black box; when it misbehaves
// the caller falls back to a fixed apology.
package fallback

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/agrimitra-poc/server/internal/assistant/answer"
	"github.com/agrimitra-poc/server/internal/assistant/model"
	logx "github.com/agrimitra-poc/server/pkg/logger"
)

const englishSystemPrompt = "You are a helpful smart-farming assistant for farmers in Karnataka, India. " +
	"Answer briefly and practically about weather, soil, and crops. Reply in English."

const kannadaSystemPrompt = "You are a helpful smart-farming assistant for farmers in Karnataka, India. " +
	"Answer briefly and practically about weather, soil, and crops. Reply in Kannada."

// Service wraps the Gemini chat model behind the answer.Responder interface.
type Service struct {
	chat      *gemini.ChatModel
	modelName string
}

// New builds the Gemini client and chat model from environment-sourced
// configuration.
func New(ctx context.Context, apiKey, baseURL string, cfg model.FallbackModelConfig) (*Service, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	temperature := cfg.Temperature
	maxTokens := cfg.MaxTokens
	chat, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating fallback model")
		return nil, fmt.Errorf("error creating fallback model: %w", err)
	}

	return &Service{chat: chat, modelName: cfg.Model}, nil
}

// Reply asks the model for a free-text answer in the session language.
func (s *Service) Reply(ctx context.Context, text string, lang model.Language) (string, error) {
	system := englishSystemPrompt
	if lang == model.Kannada {
		system = kannadaSystemPrompt
	}

	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(text),
	}

	out, err := s.chat.Generate(ctx, messages)
	if err != nil {
		logx.Error().Err(err).Str("model", s.modelName).Msg("fallback generation failed")
		return "", err
	}
	if out == nil || out.Content == "" {
		return "", fmt.Errorf("fallback model returned empty content")
	}
	if meta := out.ResponseMeta; meta != nil && meta.Usage != nil {
		logx.Debug().
			Str("model", s.modelName).
			Int("prompt_tokens", meta.Usage.PromptTokens).
			Int("completion_tokens", meta.Usage.CompletionTokens).
			Msg("fallback token usage")
	}
	return out.Content, nil
}

var _ answer.Responder = (*Service)(nil)
