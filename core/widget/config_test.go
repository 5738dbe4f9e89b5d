package widget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrwidget/core/resolve"
	"github.com/dmitrymomot/qrwidget/core/widget"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		d, err := widget.LoadDefaults()
		require.NoError(t, err)

		assert.Equal(t, 256, d.Size)
		assert.Equal(t, "#ffffff", d.BackgroundColor)
		assert.Equal(t, "#000000", d.DotColor)
		assert.Equal(t, "qrv", d.URLParamName)
		assert.Equal(t, "QR code is not available.", d.NoValueMessage)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("QRWIDGET_SIZE", "512")
		t.Setenv("QRWIDGET_DOT_COLOR", "#222222")

		d, err := widget.LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, 512, d.Size)
		assert.Equal(t, "#222222", d.DotColor)
	})
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	d := widget.Defaults{
		Size:            256,
		BackgroundColor: "#ffffff",
		DotColor:        "#000000",
		URLParamName:    "qrv",
		NoValueMessage:  "nothing here",
	}

	t.Run("fills blanks", func(t *testing.T) {
		cfg := widget.Config{}.WithDefaults(d)
		assert.Equal(t, 256, cfg.Width)
		assert.Equal(t, 256, cfg.Height)
		assert.Equal(t, "#ffffff", cfg.BackgroundColor)
		assert.Equal(t, "#000000", cfg.DotColor)
		assert.Equal(t, "qrv", cfg.URLParamName)
		assert.Equal(t, "nothing here", cfg.NoValueMessage)
	})

	t.Run("never overrides set fields", func(t *testing.T) {
		cfg := widget.Config{Width: 128, DotColor: "#123456"}.WithDefaults(d)
		assert.Equal(t, 128, cfg.Width)
		assert.Equal(t, 128, cfg.Height, "height follows configured width")
		assert.Equal(t, "#123456", cfg.DotColor)
	})
}

func TestConfig_Mode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "provided-value", widget.Config{}.Mode())
	assert.Equal(t, "url-parameter", widget.Config{ValueSource: resolve.SourceURLParam}.Mode())

	recordCfg := widget.Config{
		RecordID:    "001",
		ObjectType:  "Account",
		ValueField:  "Name",
		ValueSource: resolve.SourceURLParam,
	}
	assert.Equal(t, "record-field", recordCfg.Mode(), "record mode wins over the selector")
}
