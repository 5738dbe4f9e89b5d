package render

import (
	"sync"

	"github.com/google/uuid"
)

// Artifact is one rendered QR symbol. Its ID stays stable across
// in-place updates and changes only when the artifact is recreated.
type Artifact struct {
	ID      uuid.UUID
	PNG     []byte
	Options Options
}

// Mount is the container a rendered artifact lives in, the stand-in for
// a host UI element. It holds at most one artifact plus the widget's
// title and the placeholder text shown when there is nothing to render.
// Safe for concurrent reads by the host while the widget mutates it.
type Mount struct {
	mu          sync.RWMutex
	title       string
	placeholder string
	artifact    *Artifact
}

// NewMount creates an empty mount.
func NewMount() *Mount {
	return &Mount{}
}

// Artifact returns the current artifact, or nil when the mount is empty.
func (m *Mount) Artifact() *Artifact {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.artifact
}

// Title returns the widget title currently shown with the artifact.
func (m *Mount) Title() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.title
}

// SetTitle replaces the title text. Empty hides the title.
func (m *Mount) SetTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.title = title
}

// Placeholder returns the text shown when no artifact is present.
func (m *Mount) Placeholder() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.placeholder
}

// SetPlaceholder replaces the placeholder text.
func (m *Mount) SetPlaceholder(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.placeholder = text
}

// Clear removes the artifact and placeholder, leaving the mount empty.
func (m *Mount) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifact = nil
	m.placeholder = ""
}

func (m *Mount) put(a *Artifact) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifact = a
	m.placeholder = ""
}

// swap replaces the artifact's content in place, keeping its identity,
// provided the artifact is still the one mounted.
func (m *Mount) swap(id uuid.UUID, png []byte, opts Options) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.artifact == nil || m.artifact.ID != id {
		return false
	}
	m.artifact = &Artifact{ID: id, PNG: png, Options: opts}
	return true
}
