// Package nlu holds the keyword-driven language understanding of the
// assistant: text normalisation, entity extraction against indexed keys, and
// priority-ordered intent classification over English and Kannada keyword
// sets. Everything here is heuristic string work; there is no statistical
// model behind it.
package nlu

import "strings"

// Normalize lower-cases, trims, and collapses internal whitespace runs to
// single spaces. All matching in the assistant operates on normalised forms;
// the original casing survives only in the raw transcript display.
// Normalize is pure and idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// squash removes every space so that matching tolerates spacing differences
// in district and crop names ("dakshinakannada" vs "dakshina kannada").
func squash(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
