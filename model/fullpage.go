package model

import (
	"context"
	"image"

	"github.com/lemonit-eric-mao/MinerU/geom"
	"github.com/lemonit-eric-mao/MinerU/region"
)

// FullPageLayout is the name of the heuristic layout backend.
const FullPageLayout = "full_page"

// FullPage returns a layout detector that reports each page as one
// plain-text region covering the whole image. It is the fallback when no
// trained layout backend is wired in: downstream OCR still produces text
// lines, just without semantic layout classes.
func FullPage() LayoutDetector { return fullPage{} }

type fullPage struct{}

func (fullPage) Detect(ctx context.Context, img image.Image) ([]region.Region, error) {
	b := img.Bounds()
	return []region.Region{{
		Box: geom.Rect{
			X0: float64(b.Min.X), Y0: float64(b.Min.Y),
			X1: float64(b.Max.X), Y1: float64(b.Max.Y),
		},
		Category:   region.PlainText,
		Confidence: 1,
	}}, nil
}
