package scraper

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed reconciliation so the HTTP layer can map
// it to a status code without parsing messages.
type ErrorKind int

const (
	// KindUnsupportedBrand: the brand is not in the known mapping.
	KindUnsupportedBrand ErrorKind = iota
	// KindNotFound: every candidate location returned not-found.
	KindNotFound
	// KindTransport: network, DNS or timeout failure reaching the vendor.
	KindTransport
	// KindStore: the catalog store failed to read or persist.
	KindStore
)

// ScrapeError is the single structured error type returned by the
// reconciler. Message is safe to show to callers; the wrapped cause is for
// logs only.
type ScrapeError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *ScrapeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *ScrapeError) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, cause error, format string, args ...any) *ScrapeError {
	return &ScrapeError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

// KindOf extracts the classification from an error returned by this
// package. Unclassified errors count as store failures.
func KindOf(err error) ErrorKind {
	var se *ScrapeError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindStore
}
