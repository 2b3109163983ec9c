package model

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	User Sender = "user"
	Bot  Sender = "bot"
)

// Language is the session language tag.
type Language string

const (
	English Language = "en"
	Kannada Language = "kn"
)

// SpeechTag returns the BCP-47 tag handed to speech capture and synthesis.
func (l Language) SpeechTag() string {
	if l == Kannada {
		return "kn-IN"
	}
	return "en-IN"
}

// ParseLanguage normalises a raw tag into a known language.
// Unknown values fall back to English.
func ParseLanguage(v string) Language {
	if Language(v) == Kannada {
		return Kannada
	}
	return English
}

// ChatMessage is a single entry in the session transcript. Once a message is
// fully revealed it is immutable; only the trailing bot message is updated
// incrementally by the reveal task.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Intent is the coarse category of a user query.
type Intent string

const (
	IntentWeather Intent = "weather"
	IntentSoil    Intent = "soil"
	IntentCrop    Intent = "crop"
	IntentUnknown Intent = "unknown"
)
