package widget

import (
	"strings"

	"github.com/dmitrymomot/qrwidget/pkg/render"
)

const (
	defaultDotType    = "Rounded"
	defaultLogoMargin = 5
	defaultLogoSize   = 0.5

	// logoCrossOrigin fetches the logo without credentials so the
	// overlay works across origins.
	logoCrossOrigin = "anonymous"
)

// buildOptions maps the widget configuration and a resolved value onto
// the renderer's options schema. Pure and deterministic: the same
// inputs always produce the same options value.
//
// Error correction is pinned to the highest tier regardless of
// configuration so logo overlays remain scannable.
func buildOptions(cfg Config, value string) render.Options {
	width := cfg.Width
	if width <= 0 {
		width = 256
	}
	height := cfg.Height
	if height <= 0 {
		height = width
	}

	dotType := cfg.DotType
	if dotType == "" {
		dotType = defaultDotType
	}

	opts := render.Options{
		Data:            value,
		Width:           width,
		Height:          height,
		BackgroundColor: cfg.BackgroundColor,
		Dots: render.DotOptions{
			Color: cfg.DotColor,
			Type:  strings.ToLower(dotType),
		},
		CornersSquare: render.CornerOptions{Type: cornerStyle(cfg.CornerSquareType)},
		CornersDot:    render.CornerOptions{Type: cornerStyle(cfg.CornerDotType)},
		QR:            render.QROptions{ErrorCorrectionLevel: render.ECLevelHigh},
	}

	if cfg.LogoURL != "" {
		margin := cfg.LogoMargin
		if margin == 0 {
			margin = defaultLogoMargin
		}
		size := cfg.LogoSize
		if size == 0 {
			size = defaultLogoSize
		}
		opts.Image = cfg.LogoURL
		opts.ImageOptions = render.ImageOptions{
			CrossOrigin:        logoCrossOrigin,
			Margin:             margin,
			Size:               size,
			HideBackgroundDots: true,
		}
	}

	return opts
}

// cornerStyle normalizes a corner style string into the three-way case
// the schema expects: absent and the "None" sentinel both leave the
// style unset; anything else is lowercased.
func cornerStyle(s string) string {
	if s == "" || strings.EqualFold(s, CornerStyleNone) {
		return ""
	}
	return strings.ToLower(s)
}
