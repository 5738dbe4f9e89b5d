// Package assets provides the one-shot asset loading contract the
// widget awaits before it may render: typically the renderer's resource
// bundle or a logo image.
//
// A load is attempted at most once per reference per loader instance
// and the outcome is cached, success and failure alike. A failed load
// therefore stays failed for the loader's lifetime, which matches the
// widget's no-retry policy.
package assets
