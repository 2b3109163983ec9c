package answer

import (
	"context"

	"github.com/agrimitra-poc/server/internal/assistant/knowledge"
	"github.com/agrimitra-poc/server/internal/assistant/model"
	"github.com/agrimitra-poc/server/internal/assistant/nlu"
	logx "github.com/agrimitra-poc/server/pkg/logger"
)

// SnapshotSource supplies the latest cached weather reading. The pipeline
// never fetches weather itself; resolution stays free of blocking I/O.
type SnapshotSource interface {
	Latest() model.WeatherSnapshot
}

// Responder is the black-box language-model fallback consulted for queries no
// intent matched. Implementations must return a user-facing string; errors
// are swallowed into a fixed apology.
type Responder interface {
	Reply(ctx context.Context, text string, lang model.Language) (string, error)
}

// Pipeline chains the whole resolution path: normalise, classify, extract,
// resolve, format. One instance serves the session for its lifetime; the
// indexes it holds are immutable.
type Pipeline struct {
	districts *knowledge.DistrictIndex
	crops     *knowledge.CropIndex
	weather   SnapshotSource
	fallback  Responder
}

// NewPipeline assembles a pipeline. weather and fallback may be nil; a nil
// weather source yields the unavailable sentinel, a nil fallback yields the
// fixed unknown-intent reply.
func NewPipeline(districts *knowledge.DistrictIndex, crops *knowledge.CropIndex, weather SnapshotSource, fallback Responder) *Pipeline {
	return &Pipeline{districts: districts, crops: crops, weather: weather, fallback: fallback}
}

// Reply resolves one user utterance into the full reply text.
func (p *Pipeline) Reply(ctx context.Context, text string, lang model.Language) string {
	norm := nlu.Normalize(text)
	intent := nlu.Classify(norm, p.districts.Keys(), p.crops.Keys())
	logx.Debug().Str("intent", string(intent)).Str("lang", string(lang)).Msg("query classified")

	var snap model.WeatherSnapshot
	if p.weather != nil {
		snap = p.weather.Latest()
	}

	ans := Resolve(intent, norm, p.districts, p.crops, snap)
	if _, unknown := ans.(FallbackAnswer); unknown && p.fallback != nil {
		reply, err := p.fallback.Reply(ctx, text, lang)
		if err != nil || reply == "" {
			logx.Warn().Err(err).Msg("fallback model failed, using fixed reply")
			return FallbackReply(lang)
		}
		return reply
	}
	return Format(ans, lang)
}
