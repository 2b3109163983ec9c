// Package answer turns a classified query into a formatted, language-
// appropriate reply: the pure resolver produces a structured answer variant
// and the formatter renders it line by line, omitting whatever the record
// does not carry.
package answer

import "github.com/agrimitra-poc/server/internal/assistant/model"

// Answer is the structured result of resolving one user query.
type Answer interface {
	answer()
}

// WeatherAnswer carries the latest cached weather snapshot.
type WeatherAnswer struct {
	Snapshot model.WeatherSnapshot
}

// SoilAnswer carries the soil record of the resolved district.
type SoilAnswer struct {
	Record *model.SoilRecord
}

// SoilClarification asks the user for a district, with example names drawn
// from the index.
type SoilClarification struct {
	Examples []string
}

// CropAnswer carries the resolved crop record.
type CropAnswer struct {
	Record *model.CropRecord
}

// CropClarification asks the user for a crop name, with examples.
type CropClarification struct {
	Examples []string
}

// FallbackAnswer marks a query no intent matched.
type FallbackAnswer struct{}

func (WeatherAnswer) answer()     {}
func (SoilAnswer) answer()        {}
func (SoilClarification) answer() {}
func (CropAnswer) answer()        {}
func (CropClarification) answer() {}
func (FallbackAnswer) answer()    {}
