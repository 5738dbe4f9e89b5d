package widget

// readiness aggregates the independent asynchronous signals that gate
// rendering. mounted and assetsLoaded advance once; recordFetched can
// regress when a re-subscription starts over. assetFailed pins the
// widget in a non-rendering state for its lifetime.
type readiness struct {
	mounted       bool
	assetsLoaded  bool
	assetFailed   bool
	recordFetched bool
}

// ready reports whether it is safe to render: every applicable signal
// must hold. recordFetched applies only in record-field mode.
func (r readiness) ready(recordMode bool) bool {
	if !r.mounted || !r.assetsLoaded || r.assetFailed {
		return false
	}
	if recordMode && !r.recordFetched {
		return false
	}
	return true
}
