package record

import "errors"

var (
	// ErrProviderClosed indicates the provider has been shut down and
	// accepts no further subscriptions or publishes.
	ErrProviderClosed = errors.New("record provider closed")

	// ErrEmptyRecordID indicates a subscription was attempted without a
	// record id.
	ErrEmptyRecordID = errors.New("empty record id")
)
