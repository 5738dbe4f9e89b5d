package record

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qrwidget/core/resolve"
)

// DefaultSubscriptionBuffer is the per-subscription channel buffer. A
// buffered channel keeps a slow consumer from blocking publishers.
const DefaultSubscriptionBuffer = 8

// MemoryProvider is an in-process Provider. Publishes fan out to every
// subscription for the matching record id, restricted to the fields the
// subscriber asked for. It is safe for concurrent use.
type MemoryProvider struct {
	mu      sync.RWMutex
	records map[string]map[resolve.QualifiedField]string
	subs    map[string]map[string]*memorySub // recordID -> subID -> sub
	closed  bool
}

type memorySub struct {
	fields []resolve.QualifiedField
	ch     chan Update
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		records: make(map[string]map[resolve.QualifiedField]string),
		subs:    make(map[string]map[string]*memorySub),
	}
}

// Subscribe implements Provider. If the record already has data, the
// current snapshot is delivered immediately. The subscription ends and
// its channel closes when ctx is done or the provider is closed.
func (p *MemoryProvider) Subscribe(ctx context.Context, recordID string, fields []resolve.QualifiedField) (<-chan Update, error) {
	if recordID == "" {
		return nil, ErrEmptyRecordID
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrProviderClosed
	}

	sub := &memorySub{
		fields: append([]resolve.QualifiedField(nil), fields...),
		ch:     make(chan Update, DefaultSubscriptionBuffer),
	}
	subID := uuid.New().String()
	if p.subs[recordID] == nil {
		p.subs[recordID] = make(map[string]*memorySub)
	}
	p.subs[recordID][subID] = sub

	if data, ok := p.records[recordID]; ok {
		sub.ch <- Update{Snapshot: projectSnapshot(data, sub.fields)}
	}
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		defer p.mu.Unlock()
		if subs, ok := p.subs[recordID]; ok {
			if s, ok := subs[subID]; ok {
				delete(subs, subID)
				close(s.ch)
			}
		}
	}()

	return sub.ch, nil
}

// SetRecord replaces a record's data wholesale and notifies subscribers
// with fresh snapshots projected onto their field lists.
func (p *MemoryProvider) SetRecord(recordID string, fields map[resolve.QualifiedField]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	copied := make(map[resolve.QualifiedField]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	p.records[recordID] = copied

	for _, sub := range p.subs[recordID] {
		deliver(sub.ch, Update{Snapshot: projectSnapshot(copied, sub.fields)})
	}
}

// FailRecord notifies subscribers of a fetch error. Record data kept by
// the provider is untouched; the error is the subscriber's latest truth
// until the next SetRecord.
func (p *MemoryProvider) FailRecord(recordID string, err error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	for _, sub := range p.subs[recordID] {
		deliver(sub.ch, Update{Err: err})
	}
}

// Close ends every subscription and rejects further use.
func (p *MemoryProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, subs := range p.subs {
		for id, sub := range subs {
			delete(subs, id)
			close(sub.ch)
		}
	}
}

// deliver drops the oldest pending update when the buffer is full, so
// the channel always ends with the newest state (last-delivered-wins).
func deliver(ch chan Update, u Update) {
	for {
		select {
		case ch <- u:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func projectSnapshot(data map[resolve.QualifiedField]string, fields []resolve.QualifiedField) *Snapshot {
	projected := make(map[resolve.QualifiedField]string, len(fields))
	for _, f := range fields {
		if v, ok := data[f]; ok {
			projected[f] = v
		}
	}
	return NewSnapshot(projected)
}
