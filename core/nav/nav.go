package nav

import (
	"context"
	"net/url"
	"sync"
)

// State is the query-parameter view of the current navigation context.
// Multi-valued parameters collapse to their first value.
type State map[string]string

// StateFromQuery flattens parsed URL query values into a State.
func StateFromQuery(values url.Values) State {
	s := make(State, len(values))
	for k := range values {
		s[k] = values.Get(k)
	}
	return s
}

// Provider is a reactive navigation context source. Subscribe returns a
// channel that emits the full State on every navigation event, starting
// with the current state if one is known. The channel is closed when
// the subscription ends.
type Provider interface {
	Subscribe(ctx context.Context) (<-chan State, error)
}

// MemoryProvider is an in-process Provider driven by Set calls. Safe
// for concurrent use.
type MemoryProvider struct {
	mu      sync.Mutex
	current State
	known   bool
	subs    []chan State
}

// NewMemoryProvider creates a provider with no current state.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

// Subscribe implements Provider.
func (p *MemoryProvider) Subscribe(ctx context.Context) (<-chan State, error) {
	ch := make(chan State, 8)

	p.mu.Lock()
	p.subs = append(p.subs, ch)
	if p.known {
		ch <- p.current
	}
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.subs {
			if sub == ch {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				close(ch)
				break
			}
		}
	}()

	return ch, nil
}

// Set replaces the current state and notifies subscribers. The map is
// copied; callers keep ownership of theirs.
func (p *MemoryProvider) Set(s State) {
	copied := make(State, len(s))
	for k, v := range s {
		copied[k] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = copied
	p.known = true
	for _, ch := range p.subs {
		select {
		case ch <- copied:
		default:
			// Drop when the subscriber lags; the next navigation
			// event carries the full state anyway.
		}
	}
}
