// Package session owns the chat transcript and drives each turn: capture,
// resolve, reveal, speak. The session is the only component allowed to
// mutate the transcript, and only its trailing bot message is ever mutable.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/agrimitra-poc/server/internal/assistant/answer"
	"github.com/agrimitra-poc/server/internal/assistant/model"
	"github.com/agrimitra-poc/server/internal/assistant/speech"
	logx "github.com/agrimitra-poc/server/pkg/logger"
)

// DefaultRevealInterval matches the typing speed users see: one character
// every 30ms.
const DefaultRevealInterval = 30 * time.Millisecond

// Config carries the session's runtime parameters, parsed from
// model.SessionConfig in main.
type Config struct {
	RevealInterval time.Duration
	Language       model.Language
}

// Session is one assistant conversation: the ordered transcript, the current
// language, the exclusive voice-capture resource, and the single active
// reveal task.
type Session struct {
	mu        sync.Mutex
	pipeline  *answer.Pipeline
	speechIn  speech.Input
	speechOut speech.Output

	lang           model.Language
	messages       []model.ChatMessage
	reveal         *RevealTask
	revealInterval time.Duration

	listening   bool
	voiceNotice bool
}

// New assembles a session. inputFactory receives the session's capture
// callbacks and returns the voice input adapter; pass nil for a runtime
// without speech capture. A nil output mutes speech synthesis.
func New(pipeline *answer.Pipeline, inputFactory func(speech.Events) speech.Input, out speech.Output, cfg Config) *Session {
	s := &Session{
		pipeline:       pipeline,
		speechOut:      out,
		lang:           cfg.Language,
		revealInterval: cfg.RevealInterval,
	}
	if s.lang == "" {
		s.lang = model.English
	}
	if s.revealInterval <= 0 {
		s.revealInterval = DefaultRevealInterval
	}
	if out == nil {
		s.speechOut = speech.NullOutput{}
	}

	events := speech.Events{
		OnResult: s.onTranscript,
		OnError:  s.onCaptureError,
		OnEnd:    s.onCaptureEnd,
	}
	if inputFactory != nil {
		s.speechIn = inputFactory(events)
	} else {
		s.speechIn = speech.UnsupportedInput{}
	}
	s.speechIn.SetLanguage(s.lang)
	return s
}

// Messages returns a snapshot of the transcript.
func (s *Session) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Language returns the current session language.
func (s *Session) Language() model.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage switches the session language and reconfigures the speech
// capability's tag. Listening state is deliberately left alone.
func (s *Session) SetLanguage(lang model.Language) {
	s.mu.Lock()
	s.lang = lang
	in := s.speechIn
	s.mu.Unlock()
	in.SetLanguage(lang)
}

// HandleText runs one full turn for a typed or transcribed utterance: the
// user message is appended, the reply is resolved synchronously, an empty bot
// message is appended, and its reveal task starts. Any reveal still running
// from a previous turn is cancelled first, leaving its partial text standing.
// The returned task lets callers wait for the reveal to finish.
func (s *Session) HandleText(ctx context.Context, text string) *RevealTask {
	s.mu.Lock()
	if s.reveal != nil {
		s.reveal.Cancel()
		s.reveal = nil
	}
	s.messages = append(s.messages, model.ChatMessage{Sender: model.User, Text: text})
	lang := s.lang
	s.mu.Unlock()

	reply := s.pipeline.Reply(ctx, text, lang)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, model.ChatMessage{Sender: model.Bot})
	task := s.startReveal(reply, len(s.messages)-1)
	s.reveal = task
	return task
}

// ToggleListening flips the exclusive voice-capture resource: not-listening
// starts it, listening stops it. When capture is unsupported a one-time
// notice is appended to the transcript and voice stays disabled. Returns the
// resulting listening state.
func (s *Session) ToggleListening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listening {
		s.speechIn.Stop()
		s.listening = false
		return false
	}

	if err := s.speechIn.Start(); err != nil {
		if errors.Is(err, speech.ErrUnsupported) {
			if !s.voiceNotice {
				s.voiceNotice = true
				s.messages = append(s.messages, model.ChatMessage{Sender: model.Bot, Text: answer.VoiceUnavailableNotice(s.lang)})
			}
		} else {
			logx.Warn().Err(err).Msg("failed to start voice capture")
		}
		return false
	}
	s.listening = true
	return true
}

// Listening reports whether voice capture is active.
func (s *Session) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listening
}

// onTranscript feeds a finalized voice transcript into the turn pipeline.
// Interim transcripts are ignored.
func (s *Session) onTranscript(transcript string, final bool) {
	if !final || transcript == "" {
		return
	}
	s.mu.Lock()
	s.listening = false
	s.mu.Unlock()
	s.HandleText(context.Background(), transcript)
}

func (s *Session) onCaptureError(err error) {
	logx.Warn().Err(err).Msg("voice capture error")
	s.mu.Lock()
	s.listening = false
	s.mu.Unlock()
}

func (s *Session) onCaptureEnd() {
	s.mu.Lock()
	s.listening = false
	s.mu.Unlock()
}

// speak hands the finished reply to the speech output. Best effort: synthesis
// problems never disturb the session.
func (s *Session) speak(text string) {
	defer func() {
		if r := recover(); r != nil {
			logx.Warn().Msgf("speech output panic ignored: %v", r)
		}
	}()
	s.mu.Lock()
	out := s.speechOut
	lang := s.lang
	s.mu.Unlock()
	out.Speak(text, lang)
}
