// Package render defines the rendering contract the widget core drives:
// an Options schema describing the desired QR artifact, a Mount the
// artifact lives in, and a Renderer that creates a Handle for in-place
// updates.
//
// The split mirrors how styling-capable QR libraries work: creating an
// artifact is expensive and replaces the mount's contents, while
// updating through an existing handle refreshes the artifact in place
// and keeps its identity stable, which avoids flicker in a UI host.
//
// QRRenderer is a real implementation backed by github.com/skip2/go-qrcode
// producing PNG artifacts. It honors the subset of the schema the
// underlying encoder supports (dimensions, colors, error correction);
// dot and corner styling directives are carried in the options for
// renderers that can apply them.
package render
