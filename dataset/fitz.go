package dataset

import (
	"context"
	"fmt"
	"runtime"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"
)

// DefaultDPI is the rasterization resolution for PDF pages.
const DefaultDPI = 200

// PDFDataset renders pages of a PDF document through go-fitz.
type PDFDataset struct {
	doc  *fitz.Document
	path string
	dpi  int
}

// OpenPDF opens the document at path. dpi <= 0 selects DefaultDPI.
func OpenPDF(path string, dpi int) (*PDFDataset, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &PDFDataset{doc: doc, path: path, dpi: dpi}, nil
}

func (d *PDFDataset) Len() int { return d.doc.NumPage() }

func (d *PDFDataset) Page(index int) (Page, error) {
	img, err := d.doc.ImageDPI(index, float64(d.dpi))
	if err != nil {
		return Page{}, fmt.Errorf("render page %d: %w", index, err)
	}
	b := img.Bounds()
	return Page{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}

// Pages renders the given page indices concurrently, opening a fresh fitz
// document per page task since a document handle is not safe for concurrent
// rendering. Results are index-aligned with indices.
func (d *PDFDataset) Pages(ctx context.Context, indices []int) ([]Page, error) {
	pages := make([]Page, len(indices))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, pageIndex := range indices {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			doc, err := fitz.New(d.path)
			if err != nil {
				return fmt.Errorf("open pdf %s: %w", d.path, err)
			}
			defer doc.Close()
			img, err := doc.ImageDPI(pageIndex, float64(d.dpi))
			if err != nil {
				return fmt.Errorf("render page %d: %w", pageIndex, err)
			}
			b := img.Bounds()
			pages[i] = Page{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func (d *PDFDataset) Close() error { return d.doc.Close() }

var _ Dataset = (*PDFDataset)(nil)
