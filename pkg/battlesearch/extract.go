package battlesearch

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Top-level battle log fields read by the search, in extraction order.
var fieldPaths = []string{
	"p1",      // player 1 name
	"p2",      // player 2 name
	"winner",  // winner name, absent or null when nobody won
	"endType", // "forfeit", "normal", ...
}

// Field is one extracted value. A missing key and a JSON null are both
// reported as not Present.
type Field struct {
	// Raw is the undecoded JSON value.
	Raw string

	// Value is the decoded string form of the value.
	Value string

	Present bool
}

// Fields holds the values the evaluator needs from one battle log.
type Fields struct {
	Player1 Field
	Player2 Field
	Winner  Field
	EndType Field
}

// Extractor pulls the battle fields out of JSON documents.
//
// An Extractor reuses internal buffers between calls and is not safe for
// concurrent use. Give each worker its own.
type Extractor struct {
	paths   []string
	results []gjson.Result
}

// NewExtractor returns an Extractor for the battle log fields.
func NewExtractor() *Extractor {
	return &Extractor{
		paths:   fieldPaths,
		results: make([]gjson.Result, 0, len(fieldPaths)),
	}
}

// Extract reads the player, winner and end type fields from doc.
// Documents that are not valid JSON yield ErrMalformedDocument.
func (e *Extractor) Extract(doc []byte) (Fields, error) {
	if !gjson.ValidBytes(doc) {
		return Fields{}, fmt.Errorf("%w: invalid JSON", ErrMalformedDocument)
	}

	e.results = e.results[:0]
	for _, path := range e.paths {
		e.results = append(e.results, gjson.GetBytes(doc, path))
	}
	if len(e.results) != len(fieldPaths) {
		return Fields{}, fmt.Errorf("%w: found %d fields, expected %d",
			ErrMalformedDocument, len(e.results), len(fieldPaths))
	}

	return Fields{
		Player1: toField(e.results[0]),
		Player2: toField(e.results[1]),
		Winner:  toField(e.results[2]),
		EndType: toField(e.results[3]),
	}, nil
}

func toField(r gjson.Result) Field {
	if !r.Exists() || r.Type == gjson.Null {
		return Field{}
	}
	return Field{Raw: r.Raw, Value: r.String(), Present: true}
}
