package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"

	"github.com/agrimitra-poc/server/internal/assistant/model"
	errx "github.com/agrimitra-poc/server/internal/core/error"
	logx "github.com/agrimitra-poc/server/pkg/logger"
)

// BuildDistrictIndex parses a raw soil dataset and builds the district index.
// Two dataset shapes exist in the wild and both are accepted here:
//
//	{ "<district>": { soil fields... }, ... }
//	[ { "district": "...", "soilTypes": [ { soil fields... }, ... ] }, ... ]
//
// Individual records missing a district name are skipped. A dataset matching
// neither top-level shape is a build error, not a guess.
func BuildDistrictIndex(raw []byte) (*DistrictIndex, error) {
	idx := newDistrictIndex()

	switch firstToken(raw) {
	case '[':
		var recs []model.SoilRecord
		if err := json.Unmarshal(raw, &recs); err != nil {
			return idx, errx.New(err, http.StatusUnprocessableEntity, errx.DatasetErrorMessage)
		}
		for n := range recs {
			rec := recs[n]
			if rec.District == "" {
				logx.Warn().Int("index", n).Msg("soil record without district skipped")
				continue
			}
			idx.add(&rec)
		}
	case '{':
		var keyed map[string]model.SoilType
		if err := json.Unmarshal(raw, &keyed); err != nil {
			return idx, errx.New(err, http.StatusUnprocessableEntity, errx.DatasetErrorMessage)
		}
		// sort for a stable index order; the keyed shape has none of its own
		for _, district := range sortedKeys(keyed) {
			idx.add(&model.SoilRecord{District: district, SoilTypes: []model.SoilType{keyed[district]}})
		}
	default:
		return idx, errx.New(fmt.Errorf("unrecognized soil dataset shape"), http.StatusUnprocessableEntity, errx.DatasetErrorMessage)
	}

	logx.Debug().Int("districts", idx.Len()).Msg("district index built")
	return idx, nil
}

// BuildCropIndex parses the crop dataset (an array of crop records) and keys
// every record by both its primary and its Kannada name. Records without a
// primary name are skipped.
func BuildCropIndex(raw []byte) (*CropIndex, error) {
	idx := newCropIndex()

	if firstToken(raw) != '[' {
		return idx, errx.New(fmt.Errorf("unrecognized crop dataset shape"), http.StatusUnprocessableEntity, errx.DatasetErrorMessage)
	}
	var recs []model.CropRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return idx, errx.New(err, http.StatusUnprocessableEntity, errx.DatasetErrorMessage)
	}
	for n := range recs {
		rec := recs[n]
		if rec.Name == "" {
			logx.Warn().Int("index", n).Msg("crop record without name skipped")
			continue
		}
		idx.add(&rec)
	}

	logx.Debug().Int("crops", idx.Len()).Msg("crop index built")
	return idx, nil
}

// LoadDistrictIndex reads the soil dataset from disk and builds the index.
// An unreadable file yields an empty index and the error; the session can
// still run, it just answers soil queries with clarifications.
func LoadDistrictIndex(path string) (*DistrictIndex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logx.Error().Err(err).Str("path", path).Msg("failed to read soil dataset")
		return newDistrictIndex(), errx.New(err, http.StatusUnprocessableEntity, errx.DatasetErrorMessage)
	}
	return BuildDistrictIndex(raw)
}

// LoadCropIndex reads the crop dataset from disk and builds the index.
func LoadCropIndex(path string) (*CropIndex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logx.Error().Err(err).Str("path", path).Msg("failed to read crop dataset")
		return newCropIndex(), errx.New(err, http.StatusUnprocessableEntity, errx.DatasetErrorMessage)
	}
	return BuildCropIndex(raw)
}

// firstToken returns the first non-whitespace byte of a JSON document, or 0.
func firstToken(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func sortedKeys(m map[string]model.SoilType) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
