// Package model defines the contracts the pipeline holds against its
// detection/recognition backends and the configuration-keyed provider that
// hands out shared model bundles. The interfaces are intentionally small and
// transport-agnostic: a backend may wrap a native library, a local runtime,
// or a remote inference service without leaking those concerns into callers.
package model

import (
	"context"
	"image"
	"time"

	"github.com/lemonit-eric-mao/MinerU/accel"
	"github.com/lemonit-eric-mao/MinerU/geom"
	"github.com/lemonit-eric-mao/MinerU/region"
)

// LayoutDetector produces layout regions for a single page image.
type LayoutDetector interface {
	Detect(ctx context.Context, img image.Image) ([]region.Region, error)
}

// BatchLayoutDetector is implemented by layout backends that accept a whole
// image batch at once. Results are index-aligned with the input batch.
type BatchLayoutDetector interface {
	LayoutDetector
	DetectBatch(ctx context.Context, images []image.Image, batchSize int) ([][]region.Region, error)
}

// FormulaDetector finds candidate formula boxes across an image batch.
// Results are index-aligned with the input batch.
type FormulaDetector interface {
	DetectBatch(ctx context.Context, images []image.Image, batchSize int) ([][]region.Region, error)
}

// FormulaRecognizer turns detected formula boxes into recognized formulas
// (LaTeX). detections and images are index-aligned; so is the result.
type FormulaRecognizer interface {
	RecognizeBatch(ctx context.Context, detections [][]region.Region, images []image.Image, batchSize int) ([][]region.Region, error)
}

// OCREngine runs text detection, and optionally recognition, on one cropped
// image. formulaMask boxes are in the crop's local frame and mark math the
// engine must skip. With recognize false only detection runs and returned
// regions carry empty text. An empty result is a normal outcome. Returned
// boxes are in the crop's local frame.
type OCREngine interface {
	Recognize(ctx context.Context, img image.Image, formulaMask []geom.Rect, recognize bool) ([]region.Region, error)
}

// TableResult is the output of one table-recognition call. Only HTML is
// guaranteed by every backend; cell boxes and the backend-reported elapsed
// time are populated by backends that measure them.
type TableResult struct {
	HTML      string
	CellBoxes []geom.Rect
	Elapsed   time.Duration
}

// TableRecognizer recognizes the structure/content of one cropped table
// image. Variants differ in how much of TableResult they fill in.
type TableRecognizer interface {
	Name() string
	Recognize(ctx context.Context, img image.Image) (TableResult, error)
}

// DefaultTableMaxTime is the advisory per-table time budget.
const DefaultTableMaxTime = 400 * time.Second

// Bundle is the configuration-selected set of engines the pipeline calls
// into. A bundle owns its backends and is not safe for concurrent use.
type Bundle struct {
	Device accel.Device

	Layout            LayoutDetector
	FormulaDetector   FormulaDetector
	FormulaRecognizer FormulaRecognizer
	OCR               OCREngine
	Table             TableRecognizer

	// Feature flags resolved from the requesting configuration.
	ApplyOCR     bool
	ApplyFormula bool
	ApplyTable   bool

	// TableMaxTime is the advisory time budget for one table region.
	TableMaxTime time.Duration
}
