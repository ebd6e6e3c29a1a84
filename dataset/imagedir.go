package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
)

// ImageDataset treats a directory of page images (or a single image file) as
// a document, one page per file in lexical order.
type ImageDataset struct {
	paths []string
}

// OpenImages builds an ImageDataset from path, which may be a directory of
// .png/.jpg/.jpeg files or a single image file.
func OpenImages(path string) (*ImageDataset, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch filepath.Ext(entry.Name()) {
			case ".jpg", ".jpeg", ".png":
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no page images found in %s", path)
	}
	return &ImageDataset{paths: paths}, nil
}

func (d *ImageDataset) Len() int { return len(d.paths) }

func (d *ImageDataset) Page(index int) (Page, error) {
	f, err := os.Open(d.paths[index])
	if err != nil {
		return Page{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Page{}, fmt.Errorf("decode %s: %w", d.paths[index], err)
	}
	b := img.Bounds()
	return Page{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}

func (d *ImageDataset) Close() error { return nil }

var _ Dataset = (*ImageDataset)(nil)
