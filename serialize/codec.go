package serialize

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// Load decodes data, auto-detecting its envelope, and parses the resulting
// JSON into a Record. The record's version must equal CurrentVersion;
// otherwise a typed error naming MinimumLogiksimVersion is returned
// (spec.md §6; original_source/serialize_detail.cpp only ever loads an
// exact version match, printing the record's own minimum-version string as
// the upgrade hint).
func Load(data []byte) (*Record, error) {
	jsonData, err := unwrapEnvelope(data)
	if err != nil {
		return nil, err
	}
	return LoadJSON(jsonData)
}

// LoadFile reads path and decodes it with Load, wrapping an os-level
// failure as ErrFileOpen (spec.md §7 "file_open_error").
func LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}
	return Load(data)
}

// LoadJSON parses plain JSON bytes into a Record, without envelope
// detection. It checks the version and clamps over-long strings
// (ClockGeneratorNameMaxSize, TextElementTextMaxSize) the same way
// original_source's to_placed_logicitem/to_placed_decoration truncate
// rather than reject.
func LoadJSON(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
	}
	if rec.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: file is version %d, this build requires %d (upgrade to LogikSim >= %s)",
			ErrVersionMismatch, rec.Version, CurrentVersion, rec.MinimumLogiksimVersion)
	}

	for i := range rec.LogicItems {
		if cg := rec.LogicItems[i].AttributesClockGenerator; cg != nil {
			if len(cg.Name) > ClockGeneratorNameMaxSize {
				cg.Name = cg.Name[:ClockGeneratorNameMaxSize]
			}
		}
	}
	for i := range rec.Decorations {
		if te := rec.Decorations[i].AttributesTextElement; te != nil {
			if len(te.Text) > TextElementTextMaxSize {
				te.Text = te.Text[:TextElementTextMaxSize]
			}
		}
	}

	return &rec, nil
}

// SaveJSON marshals rec as plain JSON — the format this package always
// writes; Non-goals exclude pixel/dialog-level detail of the gzip/base64
// envelope, so only auto-detection on load needs every variant, and JSON is
// the format original_source's own save-file UI offers by default.
func SaveJSON(rec *Record) ([]byte, error) {
	return json.Marshal(rec)
}

// SaveGzip marshals rec as JSON and gzip-compresses it, the plain (non-text-
// safe) save-file envelope Load auto-detects by its leading gzip magic
// number.
func SaveGzip(rec *Record) ([]byte, error) {
	jsonData, err := SaveJSON(rec)
	if err != nil {
		return nil, err
	}
	return gzipJSON(jsonData), nil
}

// SaveBase64Gzip marshals rec as JSON, gzip-compresses it, and base64-
// encodes the result — the text-safe clipboard envelope Load auto-detects
// by its leading "H4sI" prefix.
func SaveBase64Gzip(rec *Record) ([]byte, error) {
	gz, err := SaveGzip(rec)
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(gz)))
	base64.StdEncoding.Encode(out, gz)
	return out, nil
}
