package model

import "fmt"

// DataError reports a required field that is absent, empty or misaligned.
// It aborts report generation.
type DataError struct {
	Field  string
	Reason string
	Err    error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data error: %s %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("data error: %s %s", e.Field, e.Reason)
}

func (e *DataError) Unwrap() error { return e.Err }

// InsufficientHistoryError reports that a section needs more observations
// than the bundle carries.
type InsufficientHistoryError struct {
	Section string
	Have    int
	Need    int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history for %s: have %d, need %d", e.Section, e.Have, e.Need)
}

// LookupError reports that a symbol could not be resolved to a display name.
type LookupError struct {
	Symbol string
	Reason string
}

func (e *LookupError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("symbol lookup failed: %s", e.Symbol)
	}
	return fmt.Sprintf("symbol lookup failed: %s: %s", e.Symbol, e.Reason)
}
