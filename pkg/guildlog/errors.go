package guildlog

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the filter engine.
var (
	// ErrInvalidSortKey is returned by ApplyFilters for an unrecognized
	// SortBy value.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidDate is returned by ApplyFilters when a date bound does not
	// parse as a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

// FetchError reports a failed URL load: a transport error or a non-2xx
// response. The load aborts and produces no records, so whatever the caller
// already holds stays untouched.
type FetchError struct {
	URL        string
	StatusCode int   // 0 when the request never produced a response
	Err        error // underlying transport error, if any
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
// This enables errors.Is() and errors.As() to work with FetchError.
func (e *FetchError) Unwrap() error {
	return e.Err
}
