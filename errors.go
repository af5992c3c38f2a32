package chengyu

import (
	"errors"
	"fmt"
)

// Causes for records rejected at load time.
var (
	ErrMissingIdiom  = errors.New("missing idiom")
	ErrMissingPinyin = errors.New("missing pinyin")
	ErrIdiomLength   = errors.New("idiom is not four characters long")
	ErrSyllableCount = errors.New("pinyin does not have four syllables")
)

// LoadError reports a raw record excluded from a corpus.
type LoadError struct {
	Record int    // 0-based position of the record in its source
	Idiom  string // may be empty
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("record %d (%q): %v", e.Record, e.Idiom, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// EvaluationError reports a record which could not be evaluated against a
// query. Search skips such records.
type EvaluationError struct {
	Idiom string
	Err   error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Idiom, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
