package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/lemonit-eric-mao/MinerU/formula"
	"github.com/lemonit-eric-mao/MinerU/observability"
	"github.com/lemonit-eric-mao/MinerU/region"
)

// appendFormulas runs batched formula detection, then batched recognition
// over the detected boxes, and appends the recognized regions to each
// image's layout list. Nothing is merged or deduplicated: formula regions
// coexist with whatever the layout model found.
func (b *BatchAnalyzer) appendFormulas(ctx context.Context, images []image.Image, layouts [][]region.Region) error {
	start := time.Now()

	detections, err := b.bundle.FormulaDetector.DetectBatch(ctx, images, b.batchRatio*formulaDetBaseBatchSize)
	if err != nil {
		return fmt.Errorf("formula detection: %w", err)
	}
	if len(detections) != len(images) {
		return fmt.Errorf("formula detection returned %d results for %d images", len(detections), len(images))
	}

	recognized, err := b.bundle.FormulaRecognizer.RecognizeBatch(ctx, detections, images, b.batchRatio*formulaRecBaseBatchSize)
	if err != nil {
		return fmt.Errorf("formula recognition: %w", err)
	}
	if len(recognized) != len(images) {
		return fmt.Errorf("formula recognition returned %d results for %d images", len(recognized), len(images))
	}

	for i := range images {
		for _, r := range recognized[i] {
			if r.LaTeX != "" && r.MathML == "" {
				// MathML is a downstream convenience; a formula treeblood
				// cannot parse still keeps its LaTeX.
				if mathml, err := formula.ToMathML(r.LaTeX); err == nil {
					r.MathML = mathml
				}
			}
			layouts[i] = append(layouts[i], r)
		}
	}

	b.logger.Debug("formula stage done",
		observability.Duration(observability.MetricFormulaTime, time.Since(start)),
		observability.Int(observability.MetricPageCount, len(images)))
	return nil
}
