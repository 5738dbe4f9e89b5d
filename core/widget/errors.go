package widget

import "errors"

var (
	// ErrRecordProviderRequired indicates Run was asked to drive a
	// record-field widget without a record provider.
	ErrRecordProviderRequired = errors.New("record-field mode requires a record provider")

	// ErrNavProviderRequired indicates Run was asked to drive a
	// URL-parameter widget without a navigation provider.
	ErrNavProviderRequired = errors.New("url-parameter mode requires a navigation provider")
)
