package record

import (
	"context"
	"time"

	"github.com/dmitrymomot/qrwidget/core/resolve"
)

// Snapshot is an immutable view of a record at one point in time, keyed
// by qualified field identifier. The zero value is an empty snapshot.
type Snapshot struct {
	fields    map[resolve.QualifiedField]string
	fetchedAt time.Time
}

// NewSnapshot builds a snapshot from a field map. The map is copied so
// later mutation by the caller cannot leak into the snapshot.
func NewSnapshot(fields map[resolve.QualifiedField]string) *Snapshot {
	copied := make(map[resolve.QualifiedField]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &Snapshot{fields: copied, fetchedAt: time.Now()}
}

// Field implements resolve.FieldSource. Empty values report false.
func (s *Snapshot) Field(f resolve.QualifiedField) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.fields[f]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// FetchedAt returns when the snapshot was taken.
func (s *Snapshot) FetchedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.fetchedAt
}

// Update is one delivery from a provider: a snapshot or an error.
type Update struct {
	Snapshot *Snapshot
	Err      error
}

// Provider is a reactive record data source. Subscribe registers
// interest in a record and a field list and returns a channel of
// updates; the first update reflects the current state as soon as it is
// known. The channel is closed when the subscription ends. Delivery
// order is the provider's responsibility: the last delivered update is
// authoritative.
type Provider interface {
	Subscribe(ctx context.Context, recordID string, fields []resolve.QualifiedField) (<-chan Update, error)
}
