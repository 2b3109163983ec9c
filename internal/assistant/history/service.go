// Package history keeps the deduplicated "already looked up" lists for soil
// and crop searches, persisted through a key-value store so they survive the
// session.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agrimitra-poc/server/internal/assistant/nlu"
	logx "github.com/agrimitra-poc/server/pkg/logger"
)

var (
	// ErrDuplicate reports an add whose record is already in the list by
	// either of its names. Informational, not a failure.
	ErrDuplicate = errors.New("record already in history")
	// ErrNotConfirmed reports a clear without the caller's confirmation.
	ErrNotConfirmed = errors.New("clear requires confirmation")
)

// Entry is one remembered lookup, identified by its primary and localized
// names.
type Entry struct {
	Name        string `json:"name"`
	KannadaName string `json:"kannadaName,omitempty"`
}

// Service owns one persisted history list. Callers pass the service around
// explicitly; there is no ambient global list. Load once at session start,
// every mutation persists immediately. The session is the single logical
// writer, so operations are not guarded against concurrent writers.
type Service struct {
	store   Store
	key     string
	entries []Entry
}

func NewService(store Store, key string) *Service {
	return &Service{store: store, key: key}
}

// Load reads the persisted list. A missing key starts an empty history; a
// corrupt value is discarded rather than poisoning the session.
func (s *Service) Load(ctx context.Context) error {
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		return err
	}
	s.entries = nil
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &s.entries); err != nil {
		logx.Warn().Err(err).Str("key", s.key).Msg("discarding corrupt history value")
		s.entries = nil
	}
	return nil
}

// Entries returns a copy of the current list in insertion order.
func (s *Service) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Add appends a record unless one with the same normalized primary name or
// the same normalized localized name is already present, in which case
// ErrDuplicate is returned and the list is unchanged.
func (s *Service) Add(ctx context.Context, e Entry) error {
	name := nlu.Normalize(e.Name)
	localized := nlu.Normalize(e.KannadaName)
	for _, existing := range s.entries {
		if name != "" && name == nlu.Normalize(existing.Name) {
			return ErrDuplicate
		}
		if localized != "" && localized == nlu.Normalize(existing.KannadaName) {
			return ErrDuplicate
		}
	}
	s.entries = append(s.entries, e)
	return s.save(ctx)
}

// Remove deletes the entry at the given position.
func (s *Service) Remove(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("history index %d out of range", index)
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return s.save(ctx)
}

// Clear wipes the list. The caller must pass confirm=true; an unconfirmed
// clear is rejected so a stray tap cannot erase the history.
func (s *Service) Clear(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrNotConfirmed
	}
	s.entries = nil
	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	b, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.store.Set(ctx, s.key, string(b))
}
