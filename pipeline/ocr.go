package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/lemonit-eric-mao/MinerU/geom"
	"github.com/lemonit-eric-mao/MinerU/imaging"
	"github.com/lemonit-eric-mao/MinerU/observability"
	"github.com/lemonit-eric-mao/MinerU/region"
)

// runOCR processes every OCR-candidate region of one page: crop with
// padding, move the page's formula boxes into the crop frame, run text
// detection (and recognition when enabled), and append the returned lines
// back in page coordinates. A crop yielding no lines is a normal outcome.
func (b *BatchAnalyzer) runOCR(ctx context.Context, img image.Image, page *[]region.Region, split region.SplitResult) error {
	start := time.Now()

	for _, idx := range split.OCR {
		res := (*page)[idx]

		crop, frame := imaging.CropPad(img, res.Box, b.padX, b.padY)
		mask := adjustFormulaBoxes(split.FormulaContext, frame)

		lines, err := b.bundle.OCR.Recognize(ctx, crop, mask, b.bundle.ApplyOCR)
		if err != nil {
			return fmt.Errorf("ocr for %s region: %w", res.Category, err)
		}
		for _, line := range lines {
			line.Box = frame.ToPage(line.Box)
			*page = append(*page, line)
		}
	}

	elapsed := time.Since(start)
	if b.bundle.ApplyOCR {
		b.logger.Info("ocr time", observability.Duration(observability.MetricOCRTime, elapsed))
	} else {
		b.logger.Info("det time", observability.Duration(observability.MetricOCRTime, elapsed))
	}
	return nil
}

// adjustFormulaBoxes translates page-space formula boxes into the crop's
// local frame, dropping boxes entirely off the crop canvas and clipping the
// rest to it. A formula straddling the canvas edge still has math pixels
// inside the crop, so its on-canvas part must stay masked.
func adjustFormulaBoxes(boxes []geom.Rect, frame geom.CropFrame) []geom.Rect {
	canvas := frame.CanvasBounds()
	var out []geom.Rect
	for _, box := range boxes {
		local := frame.ToLocal(box)
		if !local.Intersects(canvas) {
			continue
		}
		out = append(out, local.Clip(canvas))
	}
	return out
}
