package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/lemonit-eric-mao/MinerU/accel"
	"github.com/lemonit-eric-mao/MinerU/model"
	"github.com/lemonit-eric-mao/MinerU/observability"
	"github.com/lemonit-eric-mao/MinerU/region"
)

// Per-stage base batch sizes, scaled by the caller's batch ratio.
const (
	layoutBaseBatchSize     = 4
	formulaDetBaseBatchSize = 1
	formulaRecBaseBatchSize = 16
)

// Default symmetric padding around OCR crops, in pixels.
const (
	defaultOCRPadX = 50
	defaultOCRPadY = 50
)

// lowMemoryThreshold is the device capacity at or below which the
// orchestrator reclaims memory between the batched and per-region phases.
const lowMemoryThreshold = 8 << 30

// BatchAnalyzer runs the fixed stage sequence over one image batch. It owns
// no models itself; everything comes from the bundle. Not safe for
// concurrent use, like the bundle it wraps.
type BatchAnalyzer struct {
	bundle     *model.Bundle
	batchRatio int
	padX, padY int
	logger     observability.Logger
}

// Option configures a BatchAnalyzer.
type Option func(*BatchAnalyzer)

// WithLogger sets the analyzer's logger.
func WithLogger(l observability.Logger) Option {
	return func(b *BatchAnalyzer) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithOCRPadding overrides the crop padding used by the OCR stage.
func WithOCRPadding(padX, padY int) Option {
	return func(b *BatchAnalyzer) {
		b.padX, b.padY = padX, padY
	}
}

// NewBatchAnalyzer wraps a model bundle. batchRatio scales every stage's
// base batch size; values below 1 mean 1.
func NewBatchAnalyzer(bundle *model.Bundle, batchRatio int, opts ...Option) *BatchAnalyzer {
	if batchRatio < 1 {
		batchRatio = 1
	}
	b := &BatchAnalyzer{
		bundle:     bundle,
		batchRatio: batchRatio,
		padX:       defaultOCRPadX,
		padY:       defaultOCRPadY,
		logger:     observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Analyze runs layout detection, then formula detection/recognition, then
// per-image OCR and table recognition, and returns one region list per
// input image, index-aligned with the batch. Each image's region list is
// grown in place by the later stages.
func (b *BatchAnalyzer) Analyze(ctx context.Context, images []image.Image) ([][]region.Region, error) {
	layoutStart := time.Now()
	layouts, err := b.detectLayout(ctx, images)
	if err != nil {
		return nil, err
	}
	b.logger.Info("layout time", observability.Duration(observability.MetricLayoutTime, time.Since(layoutStart)))

	if b.bundle.ApplyFormula {
		if err := b.appendFormulas(ctx, images, layouts); err != nil {
			return nil, err
		}
	}

	// Low-memory devices need a reclaim between the batched phase and the
	// per-region crops.
	accel.CleanIfLow(b.bundle.Device, lowMemoryThreshold, b.logger)

	for i, img := range images {
		split := region.Split(layouts[i])
		if err := b.runOCR(ctx, img, &layouts[i], split); err != nil {
			return nil, err
		}
		if b.bundle.ApplyTable {
			b.runTables(ctx, img, layouts[i], split)
		}
	}

	accel.Clean(b.bundle.Device, b.logger)

	total := 0
	for _, regions := range layouts {
		total += len(regions)
	}
	b.logger.Debug("batch analyzed",
		observability.Int(observability.MetricPageCount, len(images)),
		observability.Int(observability.MetricRegionCount, total))
	return layouts, nil
}

// detectLayout dispatches to the batched strategy when the bundle's layout
// detector supports it and falls back to sequential per-image detection
// otherwise. Both paths return index-aligned results.
func (b *BatchAnalyzer) detectLayout(ctx context.Context, images []image.Image) ([][]region.Region, error) {
	if batcher, ok := b.bundle.Layout.(model.BatchLayoutDetector); ok {
		layouts, err := batcher.DetectBatch(ctx, images, b.batchRatio*layoutBaseBatchSize)
		if err != nil {
			return nil, fmt.Errorf("layout detection: %w", err)
		}
		if len(layouts) != len(images) {
			return nil, fmt.Errorf("layout detection returned %d results for %d images", len(layouts), len(images))
		}
		return layouts, nil
	}

	layouts := make([][]region.Region, len(images))
	for i, img := range images {
		regions, err := b.bundle.Layout.Detect(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("layout detection for image %d: %w", i, err)
		}
		layouts[i] = regions
	}
	return layouts, nil
}
