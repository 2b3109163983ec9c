package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimitra-poc/server/internal/assistant/answer"
	"github.com/agrimitra-poc/server/internal/assistant/knowledge"
	"github.com/agrimitra-poc/server/internal/assistant/model"
	"github.com/agrimitra-poc/server/internal/assistant/speech"
)

type spyOutput struct {
	mu     sync.Mutex
	spoken []string
	langs  []model.Language
}

func (o *spyOutput) Speak(text string, lang model.Language) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.spoken = append(o.spoken, text)
	o.langs = append(o.langs, lang)
}

func (o *spyOutput) last() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.spoken) == 0 {
		return "", false
	}
	return o.spoken[len(o.spoken)-1], true
}

func testPipeline(t *testing.T) *answer.Pipeline {
	t.Helper()
	districts, err := knowledge.BuildDistrictIndex([]byte(`[
		{"district": "Mysuru", "soilTypes": [{"name": "Red Soil", "suitableCrops": ["Ragi", "Groundnut"]}]}
	]`))
	require.NoError(t, err)
	crops, err := knowledge.BuildCropIndex([]byte(`[
		{"name": "Tomato", "kannadaName": "ಟೊಮ್ಯಾಟೊ", "soilType": "Loamy"}
	]`))
	require.NoError(t, err)
	return answer.NewPipeline(districts, crops, nil, nil)
}

func newTestSession(t *testing.T, out speech.Output) (*Session, *speech.StubInput) {
	t.Helper()
	var stub *speech.StubInput
	s := New(testPipeline(t),
		func(ev speech.Events) speech.Input {
			stub = speech.NewStubInput(ev)
			return stub
		},
		out,
		Config{RevealInterval: time.Millisecond})
	return s, stub
}

func TestRevealCompletion(t *testing.T) {
	out := &spyOutput{}
	s, _ := newTestSession(t, out)

	task := s.HandleText(context.Background(), "tell me about Tomato")
	<-task.Done()

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.User, msgs[0].Sender)
	assert.Equal(t, "tell me about Tomato", msgs[0].Text)
	assert.Equal(t, model.Bot, msgs[1].Sender)

	// the revealed text must equal the formatted reply, rune for rune
	want := answer.Format(answer.CropAnswer{Record: mustCrop(t)}, model.English)
	assert.Equal(t, want, msgs[1].Text)

	spoken, ok := out.last()
	require.True(t, ok, "completed reveal must speak the reply")
	assert.Equal(t, want, spoken)
}

func mustCrop(t *testing.T) *model.CropRecord {
	t.Helper()
	idx, err := knowledge.BuildCropIndex([]byte(`[
		{"name": "Tomato", "kannadaName": "ಟೊಮ್ಯಾಟೊ", "soilType": "Loamy"}
	]`))
	require.NoError(t, err)
	rec, ok := idx.Lookup("tomato")
	require.True(t, ok)
	return rec
}

func TestRevealCancellation(t *testing.T) {
	out := &spyOutput{}
	s, _ := newTestSession(t, out)

	first := s.HandleText(context.Background(), "soil of Mysuru")
	time.Sleep(5 * time.Millisecond)

	// a new turn cancels the running reveal and leaves its partial text
	second := s.HandleText(context.Background(), "tell me about Tomato")
	<-first.Done()
	<-second.Done()

	msgs := s.Messages()
	require.Len(t, msgs, 4)

	full := answer.Format(answer.SoilAnswer{Record: mustSoil(t)}, model.English)
	partial := msgs[1].Text
	assert.True(t, len(partial) < len(full), "cancelled reveal must not complete")
	assert.Equal(t, partial, full[:len(partial)], "partial text is a prefix of the reply")

	// only the completed reveal was spoken
	out.mu.Lock()
	defer out.mu.Unlock()
	require.Len(t, out.spoken, 1)
	assert.Contains(t, out.spoken[0], "Tomato")
}

func mustSoil(t *testing.T) *model.SoilRecord {
	t.Helper()
	idx, err := knowledge.BuildDistrictIndex([]byte(`[
		{"district": "Mysuru", "soilTypes": [{"name": "Red Soil", "suitableCrops": ["Ragi", "Groundnut"]}]}
	]`))
	require.NoError(t, err)
	rec, ok := idx.Lookup("mysuru")
	require.True(t, ok)
	return rec
}

func TestVoiceCapture(t *testing.T) {
	t.Run("toggle starts and stops listening", func(t *testing.T) {
		s, stub := newTestSession(t, nil)
		assert.True(t, s.ToggleListening())
		assert.True(t, s.Listening())
		assert.True(t, stub.Active())

		assert.False(t, s.ToggleListening())
		assert.False(t, s.Listening())
		assert.False(t, stub.Active())
	})

	t.Run("final transcript ends listening and runs a turn", func(t *testing.T) {
		s, stub := newTestSession(t, nil)
		require.True(t, s.ToggleListening())

		stub.EmitFinal("soil of Mysuru")
		assert.False(t, s.Listening())

		msgs := s.Messages()
		require.NotEmpty(t, msgs)
		assert.Equal(t, model.User, msgs[0].Sender)
		assert.Equal(t, "soil of Mysuru", msgs[0].Text)
	})

	t.Run("language switch keeps listening state", func(t *testing.T) {
		s, stub := newTestSession(t, nil)
		require.True(t, s.ToggleListening())

		s.SetLanguage(model.Kannada)
		assert.True(t, s.Listening())
		assert.Equal(t, model.Kannada, stub.Language())
		assert.Equal(t, model.Kannada, s.Language())
	})

	t.Run("unsupported capture notices once and stays disabled", func(t *testing.T) {
		s := New(testPipeline(t), nil, nil, Config{RevealInterval: time.Millisecond})

		assert.False(t, s.ToggleListening())
		assert.False(t, s.ToggleListening())

		msgs := s.Messages()
		require.Len(t, msgs, 1, "the notice appears exactly once")
		assert.Equal(t, model.Bot, msgs[0].Sender)
		assert.Equal(t, answer.VoiceUnavailableNotice(model.English), msgs[0].Text)
	})
}

func TestLanguageAffectsReply(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.SetLanguage(model.Kannada)

	task := s.HandleText(context.Background(), "ಟೊಮ್ಯಾಟೊ ಬೆಳೆ")
	<-task.Done()

	msgs := s.Messages()
	assert.Contains(t, msgs[len(msgs)-1].Text, "ಟೊಮ್ಯಾಟೊ (Tomato)")
}
