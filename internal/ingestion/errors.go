// Package ingestion acquires job-posting text for the document-level
// keyword-match dimension: URL fetching with a local cache, main-content
// extraction, and keyword extraction.
package ingestion

import "fmt"

// Error represents a failure to acquire or extract job-posting text
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.URL, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.URL)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
