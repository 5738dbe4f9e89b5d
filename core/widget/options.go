package widget

import (
	"log/slog"

	"github.com/dmitrymomot/qrwidget/core/nav"
	"github.com/dmitrymomot/qrwidget/core/record"
	"github.com/dmitrymomot/qrwidget/pkg/assets"
	"github.com/dmitrymomot/qrwidget/pkg/render"
)

// Option configures a Widget.
type Option func(*Widget)

// WithLogger configures structured logging. Default discards.
func WithLogger(log *slog.Logger) Option {
	return func(w *Widget) {
		if log != nil {
			w.log = log
		}
	}
}

// WithRenderer sets the renderer. Default is render.NewQRRenderer.
func WithRenderer(r render.Renderer) Option {
	return func(w *Widget) {
		if r != nil {
			w.renderer = r
		}
	}
}

// WithRecordProvider sets the record data backend, required by Run in
// record-field mode.
func WithRecordProvider(p record.Provider) Option {
	return func(w *Widget) {
		w.records = p
	}
}

// WithNavProvider sets the navigation context source, required by Run
// in URL-parameter mode.
func WithNavProvider(p nav.Provider) Option {
	return func(w *Widget) {
		w.navs = p
	}
}

// WithAssetLoader sets the loader awaited before rendering and the
// asset reference it resolves. An empty ref with the default NopLoader
// means the widget has no external resources to wait for.
func WithAssetLoader(l assets.Loader, ref string) Option {
	return func(w *Widget) {
		if l != nil {
			w.loader = l
		}
		w.assetRef = ref
	}
}
