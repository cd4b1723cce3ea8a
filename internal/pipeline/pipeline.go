package pipeline

import (
	"errors"
	"time"

	"rfp-backend/internal/catalog"
)

// ErrNoCatalog is returned when Run is invoked without a loaded catalog.
var ErrNoCatalog = errors.New("no catalog loaded")

// Run executes the full pipeline for one RFP submission: discovery,
// extraction, matching, pricing, confidence scoring and response compilation,
// strictly in that order. The catalog is the only shared input and is never
// mutated. Empty RFP text is not an error; it produces an empty requirement
// set and a zero-score report. Only configuration errors (a match referencing
// an unknown SKU) fail the run.
func Run(cat *catalog.Catalog, raw RawRFP, reference string, generatedAt time.Time) (Result, error) {
	if cat == nil || cat.Len() == 0 {
		return Result{}, ErrNoCatalog
	}

	discovery := Discover(raw)
	requirements := ExtractRequirements(raw.Text)
	matches := MatchAll(requirements, cat)

	quote, err := BuildQuote(matches, cat)
	if err != nil {
		return Result{}, err
	}

	report := ScoreConfidence(requirements, matches)

	responseText := Compile(CompileInput{
		Title:        raw.Title,
		Customer:     raw.Customer,
		Reference:    reference,
		GeneratedAt:  generatedAt,
		Discovery:    discovery,
		Requirements: requirements,
		Matches:      matches,
		Quote:        quote,
		Report:       report,
	})

	return Result{
		Discovery:    discovery,
		Requirements: requirements,
		Matches:      matches,
		Quote:        quote,
		Report:       report,
		ResponseText: responseText,
		GeneratedAt:  generatedAt,
	}, nil
}
