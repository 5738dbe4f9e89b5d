package render

// Error correction levels in the options schema, lowest to highest
// recovery capacity.
const (
	ECLevelLow      = "L"
	ECLevelMedium   = "M"
	ECLevelQuartile = "Q"
	ECLevelHigh     = "H"
)

// DotOptions styles the data modules of the symbol.
type DotOptions struct {
	Color string
	// Type is a renderer-specific style name, already normalized to
	// lowercase. Empty means the renderer's default.
	Type string
}

// CornerOptions styles the corner squares or corner dots. An empty Type
// leaves the style unset so the renderer falls back to its default.
type CornerOptions struct {
	Type string
}

// ImageOptions controls the logo overlay drawn over the symbol center.
type ImageOptions struct {
	// CrossOrigin is the fetch policy for the logo resource.
	CrossOrigin string
	// Margin is the clear space around the logo, in module units.
	Margin int
	// Size is the logo size relative to the symbol, in (0, 1].
	Size float64
	// HideBackgroundDots removes data modules beneath the logo.
	HideBackgroundDots bool
}

// QROptions carries encoder-level settings.
type QROptions struct {
	ErrorCorrectionLevel string
}

// Options is the full artifact description handed to a Renderer. It is
// a plain value: rebuild it from scratch on every evaluation rather
// than patching a previous one.
type Options struct {
	Data            string
	Width           int
	Height          int
	BackgroundColor string

	Dots          DotOptions
	CornersSquare CornerOptions
	CornersDot    CornerOptions

	// Image is the logo reference; empty means no overlay and
	// ImageOptions is ignored.
	Image        string
	ImageOptions ImageOptions

	QR QROptions
}
