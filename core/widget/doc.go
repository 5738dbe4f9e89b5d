// Package widget implements the QR widget's render scheduler: the
// reactive loop that decides, from the current configuration and a set
// of independent readiness signals, when the external renderer is asked
// to create, update, or clear the artifact.
//
// A Widget has four event entry points: Mount, LoadAssets,
// ApplyRecordUpdate, and ApplyNavigation. Each entry point re-runs the
// same evaluate step against the full current state, so events may
// arrive in any order and repeated delivery is harmless. Rendering
// happens only when every applicable readiness signal holds and a value
// resolves; a value that resolves to nothing clears a previously
// rendered artifact and surfaces the configured "no value" message.
//
// The entry points serialize on an internal mutex, standing in for the
// single-threaded UI loop the widget is modeled after. Run wires the
// record and navigation providers and the asset loader to the entry
// points from one goroutine for hosts that want the lifecycle driven
// for them:
//
//	w := widget.New(cfg,
//		widget.WithRenderer(render.NewQRRenderer()),
//		widget.WithRecordProvider(provider),
//		widget.WithLogger(log),
//	)
//
//	w.Mount(mount)
//	go w.Run(ctx)
package widget
