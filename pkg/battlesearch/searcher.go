package battlesearch

import (
	"fmt"
	"os"
)

// logSearcher is the Handler of one search worker. It owns its Extractor.
type logSearcher struct {
	opts      SearchOptions
	extractor *Extractor
	out       *lineWriter
}

func newLogSearcher(opts SearchOptions, out *lineWriter) *logSearcher {
	return &logSearcher{
		opts:      opts,
		extractor: NewExtractor(),
		out:       out,
	}
}

// Handle reads one battle log and prints its report if it matches.
func (s *logSearcher) Handle(t Task) (bool, error) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return false, &FileError{Path: t.Path, Err: err}
	}

	fields, err := s.extractor.Extract(data)
	if err != nil {
		return false, &FileError{Path: t.Path, Err: err}
	}

	report, err := Evaluate(fields, s.opts, t.Path, t.Label)
	if err != nil {
		return false, &FileError{Path: t.Path, Err: err}
	}
	if report == nil {
		return false, nil
	}

	if err := s.out.WriteLine(report.String()); err != nil {
		return true, fmt.Errorf("writing report: %w", err)
	}
	return true, nil
}
