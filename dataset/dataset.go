// Package dataset provides page-image access for the analysis pipeline. A
// Dataset hands out rendered page images with their pixel dimensions; how
// pages are stored (PDF, image directory, memory) is a backend concern.
package dataset

import "image"

// Page is one rendered page image together with its pixel dimensions.
type Page struct {
	Image  image.Image
	Width  float64
	Height float64
}

// Dataset exposes a paginated document. Implementations must return pages
// that are safe to read concurrently; callers never mutate the images.
type Dataset interface {
	// Len returns the number of pages in the document.
	Len() int
	// Page renders the zero-based page index.
	Page(index int) (Page, error)
	Close() error
}

// FromImages wraps pre-rendered images as a Dataset, taking dimensions from
// each image's bounds.
func FromImages(images []image.Image) Dataset { return memDataset(images) }

type memDataset []image.Image

func (m memDataset) Len() int { return len(m) }

func (m memDataset) Page(index int) (Page, error) {
	img := m[index]
	b := img.Bounds()
	return Page{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}

func (m memDataset) Close() error { return nil }
