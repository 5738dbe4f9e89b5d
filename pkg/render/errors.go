package render

import "errors"

var (
	// ErrNoMount indicates a render was attempted without a mount point.
	ErrNoMount = errors.New("no mount point")

	// ErrEmptyData indicates the options carried no data to encode.
	ErrEmptyData = errors.New("no data to encode")

	// ErrInvalidColor indicates a color string could not be parsed as a
	// hex RGB value.
	ErrInvalidColor = errors.New("invalid hex color")

	// ErrHandleDetached indicates an update through a handle whose
	// artifact is no longer in the mount.
	ErrHandleDetached = errors.New("render handle detached from mount")
)
