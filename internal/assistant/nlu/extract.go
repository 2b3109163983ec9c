package nlu

import (
	"regexp"
	"strings"
)

var (
	soilOfRe   = regexp.MustCompile(`soil of ([\p{L}]+(?:\s+[\p{L}]+)*)`)
	districtRe = regexp.MustCompile(`([\p{L}]+)\s+district`)
	aboutRe    = regexp.MustCompile(`\b(?:about|on|for)\s+([\p{L}]+(?:\s+[\p{L}]+)*)`)
)

// ExtractDistrict finds a district mention in free text. keys are the
// normalised district keys in index order. Matching is tried in a fixed
// order: direct containment of an indexed key, then the "soil of <x>" marker,
// then the "<x> district" marker, with captured candidates resolved against
// the index by mutual substring containment. When several districts appear in
// one utterance the first match wins; the ordering is a documented limitation
// of the heuristic, not something callers should compensate for.
func ExtractDistrict(text string, keys []string) (string, bool) {
	norm := Normalize(text)
	flat := squash(norm)

	for _, key := range keys {
		if strings.Contains(flat, squash(key)) {
			return key, true
		}
	}

	if m := soilOfRe.FindStringSubmatch(norm); m != nil {
		if key, ok := resolveCandidate(m[1], keys); ok {
			return key, true
		}
	}
	if m := districtRe.FindStringSubmatch(norm); m != nil {
		if key, ok := resolveCandidate(m[1], keys); ok {
			return key, true
		}
	}
	return "", false
}

// ExtractCrop finds a crop mention in free text. keys are the normalised crop
// keys (primary and Kannada names) in index order. Direct containment of an
// indexed key is tried first, then a capture after the marker words
// "about"/"on"/"for" resolved by mutual substring containment.
func ExtractCrop(text string, keys []string) (string, bool) {
	norm := Normalize(text)
	flat := squash(norm)

	for _, key := range keys {
		if strings.Contains(flat, squash(key)) {
			return key, true
		}
	}

	if m := aboutRe.FindStringSubmatch(norm); m != nil {
		if key, ok := resolveCandidate(m[1], keys); ok {
			return key, true
		}
	}
	return "", false
}

// resolveCandidate maps a captured phrase onto a known key when either one
// contains the other, space-insensitively.
func resolveCandidate(candidate string, keys []string) (string, bool) {
	cand := squash(Normalize(candidate))
	if cand == "" {
		return "", false
	}
	for _, key := range keys {
		k := squash(key)
		if strings.Contains(cand, k) || strings.Contains(k, cand) {
			return key, true
		}
	}
	return "", false
}
