package render

// Handle refers to one live artifact and supports in-place refresh.
type Handle interface {
	// Update re-renders the artifact with new options without
	// recreating it; the artifact keeps its identity.
	Update(opts Options) error
}

// Renderer creates artifacts in a mount. Implementations must leave the
// mount untouched when they return an error.
type Renderer interface {
	// Create renders a new artifact into the mount, replacing whatever
	// was there, and returns a handle to it.
	Create(opts Options, mount *Mount) (Handle, error)
}
