package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrwidget/pkg/render"
)

func TestBuildOptions(t *testing.T) {
	t.Parallel()

	t.Run("passes dimensions and colors through", func(t *testing.T) {
		cfg := Config{
			Width:           320,
			Height:          320,
			BackgroundColor: "#ffffff",
			DotColor:        "#112233",
		}
		opts := buildOptions(cfg, "data")

		assert.Equal(t, "data", opts.Data)
		assert.Equal(t, 320, opts.Width)
		assert.Equal(t, 320, opts.Height)
		assert.Equal(t, "#ffffff", opts.BackgroundColor)
		assert.Equal(t, "#112233", opts.Dots.Color)
	})

	t.Run("defaults size and squares height to width", func(t *testing.T) {
		opts := buildOptions(Config{}, "data")
		assert.Equal(t, 256, opts.Width)
		assert.Equal(t, 256, opts.Height)

		opts = buildOptions(Config{Width: 128}, "data")
		assert.Equal(t, 128, opts.Height)
	})

	t.Run("dot type defaults to rounded and is lowercased", func(t *testing.T) {
		assert.Equal(t, "rounded", buildOptions(Config{}, "d").Dots.Type)
		assert.Equal(t, "dots", buildOptions(Config{DotType: "Dots"}, "d").Dots.Type)
	})

	t.Run("corner sentinel None leaves the style unset", func(t *testing.T) {
		for _, sentinel := range []string{"None", "none", "NONE", ""} {
			opts := buildOptions(Config{CornerSquareType: sentinel, CornerDotType: sentinel}, "d")
			assert.Empty(t, opts.CornersSquare.Type, sentinel)
			assert.Empty(t, opts.CornersDot.Type, sentinel)
		}
	})

	t.Run("concrete corner styles are lowercased", func(t *testing.T) {
		opts := buildOptions(Config{CornerSquareType: "Square", CornerDotType: "Dot"}, "d")
		assert.Equal(t, "square", opts.CornersSquare.Type)
		assert.Equal(t, "dot", opts.CornersDot.Type)
	})

	t.Run("no logo omits image options", func(t *testing.T) {
		opts := buildOptions(Config{}, "d")
		assert.Empty(t, opts.Image)
		assert.Equal(t, render.ImageOptions{}, opts.ImageOptions)
	})

	t.Run("logo applies overlay defaults", func(t *testing.T) {
		opts := buildOptions(Config{LogoURL: "https://cdn.example.com/logo.png"}, "d")
		assert.Equal(t, "https://cdn.example.com/logo.png", opts.Image)
		assert.Equal(t, "anonymous", opts.ImageOptions.CrossOrigin)
		assert.Equal(t, 5, opts.ImageOptions.Margin)
		assert.Equal(t, 0.5, opts.ImageOptions.Size)
		assert.True(t, opts.ImageOptions.HideBackgroundDots)
	})

	t.Run("logo sizing overrides are kept", func(t *testing.T) {
		opts := buildOptions(Config{LogoURL: "x", LogoMargin: 2, LogoSize: 0.3}, "d")
		assert.Equal(t, 2, opts.ImageOptions.Margin)
		assert.Equal(t, 0.3, opts.ImageOptions.Size)
	})

	t.Run("error correction is pinned to the highest tier", func(t *testing.T) {
		assert.Equal(t, render.ECLevelHigh, buildOptions(Config{}, "d").QR.ErrorCorrectionLevel)
	})
}
