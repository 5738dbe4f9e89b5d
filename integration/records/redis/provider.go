package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/qrwidget/core/record"
	"github.com/dmitrymomot/qrwidget/core/resolve"
)

const (
	// DefaultKeyPrefix prefixes record hash keys.
	DefaultKeyPrefix = "record:"

	// DefaultChannel is the pub/sub channel carrying changed record ids.
	DefaultChannel = "record.updated"
)

// Provider reads record snapshots from Redis hashes and refreshes them
// on pub/sub notifications. Implements record.Provider.
type Provider struct {
	client    redis.UniversalClient
	keyPrefix string
	channel   string
}

// Option configures a Provider.
type Option func(*Provider)

// WithKeyPrefix overrides the record hash key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(p *Provider) {
		if prefix != "" {
			p.keyPrefix = prefix
		}
	}
}

// WithChannel overrides the notification channel name.
func WithChannel(channel string) Option {
	return func(p *Provider) {
		if channel != "" {
			p.channel = channel
		}
	}
}

// NewProvider creates a provider on an existing Redis client.
func NewProvider(client redis.UniversalClient, opts ...Option) *Provider {
	p := &Provider{
		client:    client,
		keyPrefix: DefaultKeyPrefix,
		channel:   DefaultChannel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the hash key for a record id.
func (p *Provider) Key(recordID string) string {
	return p.keyPrefix + recordID
}

// Subscribe implements record.Provider. The initial snapshot is read
// immediately; afterwards every notification for the record triggers a
// re-read. The returned channel closes when ctx ends.
func (p *Provider) Subscribe(ctx context.Context, recordID string, fields []resolve.QualifiedField) (<-chan record.Update, error) {
	if recordID == "" {
		return nil, record.ErrEmptyRecordID
	}

	sub := p.client.Subscribe(ctx, p.channel)
	// Force the subscription to establish so missed notifications are
	// limited to the window before Subscribe returns.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to %q: %w", p.channel, err)
	}

	out := make(chan record.Update, 8)
	go func() {
		defer close(out)
		defer sub.Close()

		out <- p.read(ctx, recordID, fields)

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if msg.Payload != recordID {
					continue
				}
				select {
				case out <- p.read(ctx, recordID, fields):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (p *Provider) read(ctx context.Context, recordID string, fields []resolve.QualifiedField) record.Update {
	data, err := p.client.HGetAll(ctx, p.Key(recordID)).Result()
	if err != nil {
		return record.Update{Err: fmt.Errorf("read record %q: %w", recordID, err)}
	}

	projected := make(map[resolve.QualifiedField]string, len(fields))
	for _, f := range fields {
		if v, ok := data[f.String()]; ok {
			projected[f] = v
		}
	}
	return record.Update{Snapshot: record.NewSnapshot(projected)}
}

// Publish writes record fields to the hash and notifies subscribers.
// Intended for writers colocated with the widget host; external writers
// only need to follow the same key layout.
func (p *Provider) Publish(ctx context.Context, recordID string, fields map[resolve.QualifiedField]string) error {
	if recordID == "" {
		return record.ErrEmptyRecordID
	}

	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k.String()] = v
	}
	if len(values) > 0 {
		if err := p.client.HSet(ctx, p.Key(recordID), values).Err(); err != nil {
			return fmt.Errorf("write record %q: %w", recordID, err)
		}
	}
	if err := p.client.Publish(ctx, p.channel, recordID).Err(); err != nil {
		return fmt.Errorf("notify record %q: %w", recordID, err)
	}
	return nil
}
