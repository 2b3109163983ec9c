// Package knowledge loads the soil and crop datasets and builds the immutable
// lookup indexes the rest of the assistant resolves against. Dataset shape
// differences are normalised here, exactly once; downstream code never
// branches on shape.
package knowledge

import (
	"github.com/agrimitra-poc/server/internal/assistant/model"
	"github.com/agrimitra-poc/server/internal/assistant/nlu"
)

// DistrictIndex maps normalised district names to their soil records.
// Built once at session start and never mutated afterwards.
type DistrictIndex struct {
	keys    []string // normalised district names in dataset order
	records map[string]*model.SoilRecord
}

// Keys returns the normalised district keys in dataset order. Callers must
// not mutate the returned slice.
func (i *DistrictIndex) Keys() []string { return i.keys }

// Lookup returns the soil record for a normalised district key.
func (i *DistrictIndex) Lookup(key string) (*model.SoilRecord, bool) {
	r, ok := i.records[key]
	return r, ok
}

// Len reports the number of indexed districts.
func (i *DistrictIndex) Len() int { return len(i.keys) }

// Examples returns up to n district display names, used in clarification
// replies.
func (i *DistrictIndex) Examples(n int) []string {
	out := make([]string, 0, n)
	for _, k := range i.keys {
		if len(out) >= n {
			break
		}
		out = append(out, i.records[k].District)
	}
	return out
}

func (i *DistrictIndex) add(rec *model.SoilRecord) {
	key := nlu.Normalize(rec.District)
	if key == "" {
		return
	}
	if _, exists := i.records[key]; exists {
		return
	}
	i.keys = append(i.keys, key)
	i.records[key] = rec
}

// CropIndex maps normalised crop names to their records. Every record is
// reachable by both its primary and its Kannada name; both keys point at the
// same record.
type CropIndex struct {
	keys    []string // normalised keys (primary then localized) in dataset order
	names   []string // primary display names in dataset order
	records map[string]*model.CropRecord
}

// Keys returns every normalised key (primary and localized names) in dataset
// order. Callers must not mutate the returned slice.
func (i *CropIndex) Keys() []string { return i.keys }

// Lookup returns the crop record for a normalised name key.
func (i *CropIndex) Lookup(key string) (*model.CropRecord, bool) {
	r, ok := i.records[key]
	return r, ok
}

// Len reports the number of indexed crops.
func (i *CropIndex) Len() int { return len(i.names) }

// Examples returns up to n crop display names, used in clarification replies.
func (i *CropIndex) Examples(n int) []string {
	if n > len(i.names) {
		n = len(i.names)
	}
	out := make([]string, n)
	copy(out, i.names[:n])
	return out
}

func (i *CropIndex) add(rec *model.CropRecord) {
	primary := nlu.Normalize(rec.Name)
	if primary == "" {
		return
	}
	if _, exists := i.records[primary]; exists {
		return
	}
	i.names = append(i.names, rec.Name)
	i.keys = append(i.keys, primary)
	i.records[primary] = rec

	if localized := nlu.Normalize(rec.KannadaName); localized != "" && localized != primary {
		if _, exists := i.records[localized]; !exists {
			i.keys = append(i.keys, localized)
			i.records[localized] = rec
		}
	}
}

func newDistrictIndex() *DistrictIndex {
	return &DistrictIndex{records: make(map[string]*model.SoilRecord)}
}

func newCropIndex() *CropIndex {
	return &CropIndex{records: make(map[string]*model.CropRecord)}
}
