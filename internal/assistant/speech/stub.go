package speech

import (
	"sync"

	"github.com/agrimitra-poc/server/internal/assistant/model"
	logx "github.com/agrimitra-poc/server/pkg/logger"
)

// UnsupportedInput stands in when the runtime has no recognition engine.
type UnsupportedInput struct{}

func (UnsupportedInput) Start() error                { return ErrUnsupported }
func (UnsupportedInput) Stop()                       {}
func (UnsupportedInput) SetLanguage(_ model.Language) {}

// StubInput is a scriptable capture adapter for tests and headless demos.
// Callers start it and then push transcripts through EmitFinal.
type StubInput struct {
	mu     sync.Mutex
	events Events
	lang   model.Language
	active bool
}

func NewStubInput(events Events) *StubInput {
	return &StubInput{events: events, lang: model.English}
}

func (s *StubInput) Start() error {
	s.mu.Lock()
	s.active = true
	s.mu.Unlock()
	return nil
}

func (s *StubInput) Stop() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// SetLanguage records the tag; listening state is untouched.
func (s *StubInput) SetLanguage(lang model.Language) {
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
}

// Language returns the currently configured capture language.
func (s *StubInput) Language() model.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Active reports whether capture is running.
func (s *StubInput) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// EmitFinal delivers a finalized transcript and ends the capture session,
// the way a real engine finishes an utterance.
func (s *StubInput) EmitFinal(transcript string) {
	s.mu.Lock()
	s.active = false
	ev := s.events
	s.mu.Unlock()

	if ev.OnResult != nil {
		ev.OnResult(transcript, true)
	}
	if ev.OnEnd != nil {
		ev.OnEnd()
	}
}

// NullOutput swallows everything.
type NullOutput struct{}

func (NullOutput) Speak(_ string, _ model.Language) {}

// LogOutput logs spoken text instead of synthesizing it, for terminal runs.
type LogOutput struct{}

func (LogOutput) Speak(text string, lang model.Language) {
	logx.Info().Str("lang", lang.SpeechTag()).Msg("speaking: " + text)
}
