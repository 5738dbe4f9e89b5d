package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// ErrBadStatus indicates the asset endpoint answered with a non-2xx
// status.
var ErrBadStatus = errors.New("asset request returned non-success status")

// Loader resolves an asset reference, blocking until the asset is
// available or the load has failed. Implementations cache the outcome
// per reference: repeated calls return the first attempt's result.
type Loader interface {
	Load(ctx context.Context, ref string) error
}

// NopLoader reports every asset as immediately available. Useful when
// the renderer needs no external resources.
type NopLoader struct{}

// Load implements Loader.
func (NopLoader) Load(context.Context, string) error { return nil }

// HTTPLoader fetches assets over HTTP and caches the outcome per
// reference. Safe for concurrent use.
type HTTPLoader struct {
	client *http.Client

	mu      sync.Mutex
	results map[string]*loadResult
}

type loadResult struct {
	once sync.Once
	err  error
}

// HTTPLoaderOption configures an HTTPLoader.
type HTTPLoaderOption func(*HTTPLoader)

// WithHTTPClient sets the client used for asset requests. Default is
// http.DefaultClient.
func WithHTTPClient(c *http.Client) HTTPLoaderOption {
	return func(l *HTTPLoader) {
		if c != nil {
			l.client = c
		}
	}
}

// NewHTTPLoader creates an HTTP-backed asset loader.
func NewHTTPLoader(opts ...HTTPLoaderOption) *HTTPLoader {
	l := &HTTPLoader{
		client:  http.DefaultClient,
		results: make(map[string]*loadResult),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements Loader. The first call per ref performs the fetch;
// later calls, concurrent ones included, share its result.
func (l *HTTPLoader) Load(ctx context.Context, ref string) error {
	l.mu.Lock()
	res, ok := l.results[ref]
	if !ok {
		res = &loadResult{}
		l.results[ref] = res
	}
	l.mu.Unlock()

	res.once.Do(func() {
		res.err = l.fetch(ctx, ref)
	})
	return res.err
}

func (l *HTTPLoader) fetch(ctx context.Context, ref string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return fmt.Errorf("build asset request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch asset %q: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s (%s)", ErrBadStatus, resp.Status, ref)
	}

	// Drain so the connection can be reused; the widget only needs the
	// asset to be reachable, not its bytes.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
