package assets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrwidget/pkg/assets"
)

func TestNopLoader(t *testing.T) {
	t.Parallel()
	assert.NoError(t, assets.NopLoader{}.Load(context.Background(), "anything"))
}

func TestHTTPLoader(t *testing.T) {
	t.Parallel()

	t.Run("loads a reachable asset once", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("/* renderer bundle */"))
		}))
		defer srv.Close()

		l := assets.NewHTTPLoader()
		require.NoError(t, l.Load(context.Background(), srv.URL))
		require.NoError(t, l.Load(context.Background(), srv.URL))
		assert.Equal(t, int32(1), hits.Load(), "outcome is cached per ref")
	})

	t.Run("non-success status fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		err := assets.NewHTTPLoader().Load(context.Background(), srv.URL)
		assert.ErrorIs(t, err, assets.ErrBadStatus)
	})

	t.Run("a failed load stays failed", func(t *testing.T) {
		var healthy atomic.Bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !healthy.Load() {
				http.Error(w, "warming up", http.StatusServiceUnavailable)
				return
			}
		}))
		defer srv.Close()

		l := assets.NewHTTPLoader()
		require.Error(t, l.Load(context.Background(), srv.URL))

		healthy.Store(true)
		assert.Error(t, l.Load(context.Background(), srv.URL), "no retry within a loader instance")

		assert.NoError(t, assets.NewHTTPLoader().Load(context.Background(), srv.URL),
			"a fresh loader may succeed")
	})

	t.Run("unreachable host fails", func(t *testing.T) {
		err := assets.NewHTTPLoader().Load(context.Background(), "http://127.0.0.1:1/nothing")
		assert.Error(t, err)
	})
}
