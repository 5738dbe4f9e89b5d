package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/google/uuid"
	qrc "github.com/skip2/go-qrcode"
)

// QRRenderer renders PNG artifacts with github.com/skip2/go-qrcode. The
// zero value is ready to use.
type QRRenderer struct{}

// NewQRRenderer creates a PNG QR renderer.
func NewQRRenderer() *QRRenderer {
	return &QRRenderer{}
}

// Create implements Renderer.
func (r *QRRenderer) Create(opts Options, mount *Mount) (Handle, error) {
	if mount == nil {
		return nil, ErrNoMount
	}
	png, err := encodePNG(opts)
	if err != nil {
		return nil, err
	}

	a := &Artifact{ID: uuid.New(), PNG: png, Options: opts}
	mount.put(a)
	return &qrHandle{id: a.ID, mount: mount}, nil
}

type qrHandle struct {
	id    uuid.UUID
	mount *Mount
}

// Update implements Handle. The artifact keeps its ID so the host can
// tell a refresh from a recreation.
func (h *qrHandle) Update(opts Options) error {
	png, err := encodePNG(opts)
	if err != nil {
		return err
	}
	if !h.mount.swap(h.id, png, opts) {
		return ErrHandleDetached
	}
	return nil
}

func encodePNG(opts Options) ([]byte, error) {
	if opts.Data == "" {
		return nil, ErrEmptyData
	}

	q, err := qrc.New(opts.Data, recoveryLevel(opts.QR.ErrorCorrectionLevel))
	if err != nil {
		return nil, fmt.Errorf("encode qr symbol: %w", err)
	}

	if opts.Dots.Color != "" {
		fg, err := ParseHexColor(opts.Dots.Color)
		if err != nil {
			return nil, err
		}
		q.ForegroundColor = fg
	}
	if opts.BackgroundColor != "" {
		bg, err := ParseHexColor(opts.BackgroundColor)
		if err != nil {
			return nil, err
		}
		q.BackgroundColor = bg
	}

	size := opts.Width
	if size <= 0 {
		size = 256
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}

func recoveryLevel(level string) qrc.RecoveryLevel {
	switch level {
	case ECLevelLow:
		return qrc.Low
	case ECLevelMedium:
		return qrc.Medium
	case ECLevelQuartile:
		return qrc.High
	default:
		// The widget pins the highest tier; treat unknown as that.
		return qrc.Highest
	}
}

// ParseHexColor parses "#RGB" and "#RRGGBB" color strings.
func ParseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
