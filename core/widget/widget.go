package widget

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qrwidget/core/logger"
	"github.com/dmitrymomot/qrwidget/core/nav"
	"github.com/dmitrymomot/qrwidget/core/record"
	"github.com/dmitrymomot/qrwidget/core/resolve"
	"github.com/dmitrymomot/qrwidget/pkg/assets"
	"github.com/dmitrymomot/qrwidget/pkg/render"
)

// Widget is the render scheduler for one QR widget instance. Event
// entry points may be called from any goroutine; they serialize on an
// internal mutex and each one re-evaluates the full state, so delivery
// order does not matter.
type Widget struct {
	id     uuid.UUID
	cfg    Config
	params resolve.Params
	log    *slog.Logger

	renderer render.Renderer
	records  record.Provider
	navs     nav.Provider
	loader   assets.Loader
	assetRef string

	mu       sync.Mutex
	state    readiness
	mount    *render.Mount
	snapshot *record.Snapshot
	fetchErr error
	navState nav.State

	handle   render.Handle
	lastOpts render.Options
}

// New creates a widget from its configuration. The renderer defaults to
// the PNG QR renderer and the asset loader to a no-op.
func New(cfg Config, opts ...Option) *Widget {
	w := &Widget{
		id:       uuid.New(),
		cfg:      cfg,
		params:   cfg.resolveParams(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		renderer: render.NewQRRenderer(),
		loader:   assets.NopLoader{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ID returns the instance id used for log correlation.
func (w *Widget) ID() string {
	return w.id.String()
}

// Mount attaches the widget to its container and re-evaluates. Fires
// once in a normal lifecycle; repeated calls are harmless.
func (w *Widget) Mount(mount *render.Mount) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mount = mount
	w.state.mounted = mount != nil
	w.log.Debug("widget mounted", logger.WidgetID(w.ID()), logger.Event("mount"))
	w.evaluate()
}

// LoadAssets resolves the widget's asset reference through the loader
// and records the outcome. A failure is logged and permanently disables
// rendering for this instance; there is no retry.
func (w *Widget) LoadAssets(ctx context.Context) {
	err := w.loader.Load(ctx, w.assetRef)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state.assetFailed = true
		w.log.Error("asset load failed, widget disabled",
			logger.WidgetID(w.ID()), logger.Asset(w.assetRef), logger.Error(err))
		return
	}
	w.state.assetsLoaded = true
	w.log.Debug("assets loaded", logger.WidgetID(w.ID()), logger.Asset(w.assetRef))
	w.evaluate()
}

// ApplyRecordUpdate ingests one delivery from the record provider. A
// snapshot replaces the previous one wholesale and clears any prior
// fetch error; an error clears the snapshot but does not advance
// readiness, so a widget that never fetched successfully stays gated.
func (w *Widget) ApplyRecordUpdate(u record.Update) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if u.Err != nil {
		w.fetchErr = u.Err
		w.snapshot = nil
		w.log.Error("record fetch failed",
			logger.WidgetID(w.ID()), logger.RecordID(w.cfg.RecordID), logger.Error(u.Err))
		w.evaluate()
		return
	}

	w.snapshot = u.Snapshot
	w.fetchErr = nil
	w.state.recordFetched = true
	w.evaluate()
}

// ApplyNavigation ingests a navigation context change. Only consulted
// in URL-parameter mode; in other modes the state is stored and
// ignored by resolution.
func (w *Widget) ApplyNavigation(state nav.State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.navState = state
	w.evaluate()
}

// Ready reports whether every applicable readiness signal holds.
func (w *Widget) Ready() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.ready(w.params.UsesRecordField())
}

// Rendered reports whether a live artifact exists.
func (w *Widget) Rendered() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handle != nil
}

// Run drives the widget from a single goroutine: it starts the asset
// load, subscribes to the providers the active mode needs, and feeds
// deliveries to the entry points until ctx ends. Mount is the host's
// call; everything else is wired here.
func (w *Widget) Run(ctx context.Context) error {
	recordMode := w.params.UsesRecordField()

	var recordCh <-chan record.Update
	if recordMode {
		if w.records == nil {
			return ErrRecordProviderRequired
		}
		ch, err := w.records.Subscribe(ctx, w.cfg.RecordID, w.cfg.fetchFields())
		if err != nil {
			return err
		}
		recordCh = ch
	}

	var navCh <-chan nav.State
	if !recordMode && w.params.Source == resolve.SourceURLParam {
		if w.navs == nil {
			return ErrNavProviderRequired
		}
		ch, err := w.navs.Subscribe(ctx)
		if err != nil {
			return err
		}
		navCh = ch
	}

	assetDone := make(chan struct{})
	go func() {
		defer close(assetDone)
		w.LoadAssets(ctx)
	}()

	w.log.Info("widget running",
		logger.WidgetID(w.ID()), logger.Component("widget"), logger.Mode(w.cfg.Mode()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-recordCh:
			if !ok {
				recordCh = nil
				continue
			}
			w.ApplyRecordUpdate(u)
		case s, ok := <-navCh:
			if !ok {
				navCh = nil
				continue
			}
			w.ApplyNavigation(s)
		case <-assetDone:
			assetDone = nil
		}
	}
}

// evaluate is the idempotent evaluate-and-render step. Callers hold
// w.mu. It recomputes readiness and the resolved value from the full
// current state and reconciles the mount with the outcome: create when
// no artifact exists, update in place when one does and the options
// changed, clear when the value went away.
func (w *Widget) evaluate() {
	if !w.state.ready(w.params.UsesRecordField()) {
		return
	}
	if w.mount == nil {
		// Expected to resolve on a later pass once the host attaches
		// the container.
		return
	}

	value, ok := resolve.Value(w.params, w.snapshot, w.navState)
	if !ok {
		if w.handle != nil {
			w.mount.Clear()
			w.handle = nil
			w.lastOpts = render.Options{}
		}
		w.syncTitle()
		w.mount.SetPlaceholder(w.cfg.noValueMessage())
		return
	}

	opts := buildOptions(w.cfg, value)
	w.syncTitle()

	if w.handle == nil {
		w.mount.Clear()
		h, err := w.renderer.Create(opts, w.mount)
		if err != nil {
			w.log.Error("render failed", logger.WidgetID(w.ID()), logger.Error(err))
			return
		}
		w.handle = h
		w.lastOpts = opts
		return
	}

	if opts == w.lastOpts {
		return
	}
	if err := w.handle.Update(opts); err != nil {
		w.log.Error("render update failed", logger.WidgetID(w.ID()), logger.Error(err))
		return
	}
	w.lastOpts = opts
}

func (w *Widget) syncTitle() {
	if title, ok := resolve.Title(w.params, w.snapshot); ok {
		w.mount.SetTitle(title)
	} else {
		w.mount.SetTitle("")
	}
}
