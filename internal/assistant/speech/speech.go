// Package speech abstracts the runtime's voice capabilities behind two small
// injectable interfaces so the session never feature-detects globals. A real
// deployment plugs in adapters backed by the host speech engine; tests and
// headless runs use the stubs in this package.
package speech

import (
	"errors"

	"github.com/agrimitra-poc/server/internal/assistant/model"
)

// ErrUnsupported reports that the runtime has no speech engine. The session
// surfaces it once as a notice and leaves voice features disabled.
var ErrUnsupported = errors.New("speech is not supported in this runtime")

// Events are the capture callbacks an Input adapter fires. All of them are
// optional; adapters must tolerate nil handlers.
type Events struct {
	// OnResult delivers a transcript. final marks the end of the utterance;
	// interim transcripts may arrive before it.
	OnResult func(transcript string, final bool)
	// OnError reports a recognition failure.
	OnError func(err error)
	// OnEnd fires when the capture session ends for any reason.
	OnEnd func()
}

// Input is the exclusive voice-capture resource: start/stop control plus a
// per-session language tag. One instance exists per session.
type Input interface {
	Start() error
	Stop()
	SetLanguage(lang model.Language)
}

// Output speaks a string in the given language. Fire-and-forget; the core
// requires no completion guarantee and ignores failures.
type Output interface {
	Speak(text string, lang model.Language)
}
