// Package tesseract provides a gosseract-backed OCR engine for the
// analysis pipeline. It is the default local text-recognition backend.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/lemonit-eric-mao/MinerU/geom"
	"github.com/lemonit-eric-mao/MinerU/model"
	"github.com/lemonit-eric-mao/MinerU/region"
)

// Engine implements model.OCREngine using the gosseract client. Tesseract
// has no native notion of masked math regions, so recognized lines whose
// boxes overlap a formula mask are dropped instead.
type Engine struct {
	clientFactory func() *gosseract.Client
	languages     []string
}

// New constructs a Tesseract-backed engine. Languages are trained-data names
// such as "eng" or "deu"; none means the client default.
func New(languages ...string) *Engine {
	return &Engine{clientFactory: gosseract.NewClient, languages: languages}
}

// Recognize runs Tesseract over the cropped image and returns one TextLine
// region per recognized line, in the crop's local coordinates. With
// recognize false the line boxes are returned with empty text.
func (e *Engine) Recognize(ctx context.Context, img image.Image, formulaMask []geom.Rect, recognize bool) ([]region.Region, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode crop: %w", err)
	}
	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	if len(e.languages) > 0 {
		if err := c.SetLanguage(e.languages...); err != nil {
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("detect lines: %w", err)
	}

	var out []region.Region
	for _, b := range boxes {
		box := geom.Rect{
			X0: float64(b.Box.Min.X), Y0: float64(b.Box.Min.Y),
			X1: float64(b.Box.Max.X), Y1: float64(b.Box.Max.Y),
		}
		if overlapsAny(box, formulaMask) {
			continue
		}
		r := region.Region{
			Box:        box,
			Category:   region.TextLine,
			Confidence: b.Confidence / 100.0,
		}
		if recognize {
			r.Text = b.Word
		}
		out = append(out, r)
	}
	return out, nil
}

func overlapsAny(box geom.Rect, masks []geom.Rect) bool {
	for _, m := range masks {
		if box.Intersects(m) {
			return true
		}
	}
	return false
}

var _ model.OCREngine = (*Engine)(nil)
