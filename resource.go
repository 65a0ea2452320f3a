package convo

import "fmt"

// ResourceID names a drawable resource.
type ResourceID string

// ProfilePicture is the picture drawn next to every message.
const ProfilePicture ResourceID = "profile_picture"

// Drawable is a resolved resource. Terminal drawables are a single glyph,
// possibly several code points wide.
type Drawable struct {
	Glyph string
}

// Resources maps resource IDs to drawables.
type Resources map[ResourceID]Drawable

// DefaultResources returns the resources bundled with the app.
func DefaultResources() Resources {
	return Resources{
		ProfilePicture: {Glyph: "🧑"},
	}
}

// Resolve returns the drawable for id.
func (r Resources) Resolve(id ResourceID) (Drawable, error) {
	d, ok := r[id]
	if !ok {
		return Drawable{}, fmt.Errorf("%s: %w", id, ErrResourceNotFound)
	}
	return d, nil
}
