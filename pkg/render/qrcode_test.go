package render_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrwidget/pkg/render"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRRenderer_Create(t *testing.T) {
	t.Parallel()

	t.Run("renders a png artifact into the mount", func(t *testing.T) {
		mount := render.NewMount()
		r := render.NewQRRenderer()

		h, err := r.Create(render.Options{Data: "https://example.com", Width: 128}, mount)
		require.NoError(t, err)
		require.NotNil(t, h)

		a := mount.Artifact()
		require.NotNil(t, a)
		assert.True(t, bytes.HasPrefix(a.PNG, pngMagic))
		assert.Equal(t, "https://example.com", a.Options.Data)
	})

	t.Run("rejects empty data", func(t *testing.T) {
		_, err := render.NewQRRenderer().Create(render.Options{}, render.NewMount())
		assert.ErrorIs(t, err, render.ErrEmptyData)
	})

	t.Run("rejects a nil mount", func(t *testing.T) {
		_, err := render.NewQRRenderer().Create(render.Options{Data: "x"}, nil)
		assert.ErrorIs(t, err, render.ErrNoMount)
	})

	t.Run("rejects bad colors and leaves the mount untouched", func(t *testing.T) {
		mount := render.NewMount()
		_, err := render.NewQRRenderer().Create(render.Options{
			Data: "x",
			Dots: render.DotOptions{Color: "not-a-color"},
		}, mount)
		assert.ErrorIs(t, err, render.ErrInvalidColor)
		assert.Nil(t, mount.Artifact())
	})
}

func TestQRHandle_Update(t *testing.T) {
	t.Parallel()

	t.Run("refreshes in place keeping the artifact id", func(t *testing.T) {
		mount := render.NewMount()
		r := render.NewQRRenderer()

		h, err := r.Create(render.Options{Data: "before"}, mount)
		require.NoError(t, err)
		id := mount.Artifact().ID
		before := mount.Artifact().PNG

		require.NoError(t, h.Update(render.Options{Data: "after"}))

		a := mount.Artifact()
		assert.Equal(t, id, a.ID)
		assert.Equal(t, "after", a.Options.Data)
		assert.NotEqual(t, before, a.PNG)
	})

	t.Run("fails when the artifact was replaced", func(t *testing.T) {
		mount := render.NewMount()
		r := render.NewQRRenderer()

		h, err := r.Create(render.Options{Data: "first"}, mount)
		require.NoError(t, err)

		_, err = r.Create(render.Options{Data: "second"}, mount)
		require.NoError(t, err)

		assert.ErrorIs(t, h.Update(render.Options{Data: "stale"}), render.ErrHandleDetached)
	})

	t.Run("fails after the mount was cleared", func(t *testing.T) {
		mount := render.NewMount()
		h, err := render.NewQRRenderer().Create(render.Options{Data: "x"}, mount)
		require.NoError(t, err)

		mount.Clear()
		assert.ErrorIs(t, h.Update(render.Options{Data: "y"}), render.ErrHandleDetached)
	})
}

func TestMount(t *testing.T) {
	t.Parallel()

	mount := render.NewMount()
	mount.SetTitle("QR Code")
	mount.SetPlaceholder("QR code is not available.")

	assert.Equal(t, "QR Code", mount.Title())
	assert.Equal(t, "QR code is not available.", mount.Placeholder())

	mount.Clear()
	assert.Empty(t, mount.Placeholder(), "clear drops the placeholder")
	assert.Equal(t, "QR Code", mount.Title(), "clear keeps the title")
	assert.Nil(t, mount.Artifact())
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	t.Run("six digit", func(t *testing.T) {
		c, err := render.ParseHexColor("#102030")
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)
	})

	t.Run("three digit shorthand", func(t *testing.T) {
		c, err := render.ParseHexColor("#fff")
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, s := range []string{"", "white", "#12345", "#zzzzzz"} {
			_, err := render.ParseHexColor(s)
			assert.ErrorIs(t, err, render.ErrInvalidColor, s)
		}
	})
}
