package model

import "errors"

var ErrGalleryIndexOutOfRange = errors.New("gallery index out of range")

// Gallery is the image carousel state for a room detail view. The index
// always stays inside [0, len(images)); Next and Prev wrap around. An
// empty gallery has no valid index and callers render a placeholder.
type Gallery struct {
	images []string
	index  int
}

// NewGallery creates a gallery positioned on the first image
func NewGallery(images []string) *Gallery {
	return &Gallery{images: images}
}

// Len returns the number of images
func (g *Gallery) Len() int {
	return len(g.images)
}

// HasImages reports whether there is anything to show
func (g *Gallery) HasImages() bool {
	return len(g.images) > 0
}

// Index returns the current position
func (g *Gallery) Index() int {
	return g.index
}

// Current returns the image at the current position; ok is false for an
// empty gallery.
func (g *Gallery) Current() (string, bool) {
	if len(g.images) == 0 {
		return "", false
	}
	return g.images[g.index], true
}

// Next advances to the following image, wrapping to the first
func (g *Gallery) Next() int {
	if len(g.images) == 0 {
		return 0
	}
	g.index = (g.index + 1) % len(g.images)
	return g.index
}

// Prev steps back to the previous image, wrapping to the last
func (g *Gallery) Prev() int {
	if len(g.images) == 0 {
		return 0
	}
	g.index = (g.index - 1 + len(g.images)) % len(g.images)
	return g.index
}

// JumpTo moves directly to position k
func (g *Gallery) JumpTo(k int) error {
	if k < 0 || k >= len(g.images) {
		return ErrGalleryIndexOutOfRange
	}
	g.index = k
	return nil
}
