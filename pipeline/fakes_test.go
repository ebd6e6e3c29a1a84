package pipeline

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/lemonit-eric-mao/MinerU/geom"
	"github.com/lemonit-eric-mao/MinerU/model"
	"github.com/lemonit-eric-mao/MinerU/region"
)

type fakeDevice struct {
	available bool
	total     uint64
	freed     int
}

func (d *fakeDevice) Name() string                 { return "fake" }
func (d *fakeDevice) Available() bool              { return d.available }
func (d *fakeDevice) TotalMemory() (uint64, error) { return d.total, nil }
func (d *fakeDevice) FreeCache()                   { d.freed++ }

// fakeLayout returns the same fixed regions for every image.
type fakeLayout struct {
	regions []region.Region
	err     error
	calls   int
}

func (f *fakeLayout) Detect(ctx context.Context, img image.Image) ([]region.Region, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]region.Region, len(f.regions))
	copy(out, f.regions)
	return out, nil
}

// fakeBatchLayout also records the batch-size hint it was given.
type fakeBatchLayout struct {
	fakeLayout
	batchCalls   int
	gotBatchSize int
}

func (f *fakeBatchLayout) DetectBatch(ctx context.Context, images []image.Image, batchSize int) ([][]region.Region, error) {
	f.batchCalls++
	f.gotBatchSize = batchSize
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]region.Region, len(images))
	for i := range images {
		out[i] = make([]region.Region, len(f.regions))
		copy(out[i], f.regions)
	}
	return out, nil
}

type fakeFormulaDetector struct {
	boxes []region.Region
	err   error
}

func (f *fakeFormulaDetector) DetectBatch(ctx context.Context, images []image.Image, batchSize int) ([][]region.Region, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]region.Region, len(images))
	for i := range images {
		out[i] = append([]region.Region(nil), f.boxes...)
	}
	return out, nil
}

// fakeFormulaRecognizer echoes detections back with a fixed LaTeX string.
type fakeFormulaRecognizer struct {
	latex string
	err   error
}

func (f *fakeFormulaRecognizer) RecognizeBatch(ctx context.Context, detections [][]region.Region, images []image.Image, batchSize int) ([][]region.Region, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]region.Region, len(detections))
	for i, dets := range detections {
		for _, d := range dets {
			d.LaTeX = f.latex
			out[i] = append(out[i], d)
		}
	}
	return out, nil
}

// fakeOCR returns one text line per crop at a fixed local position and
// records what it was handed.
type fakeOCR struct {
	localBox  geom.Rect
	text      string
	err       error
	gotMasks  [][]geom.Rect
	gotFlags  []bool
	emitCount int
}

func (f *fakeOCR) Recognize(ctx context.Context, img image.Image, formulaMask []geom.Rect, recognize bool) ([]region.Region, error) {
	f.gotMasks = append(f.gotMasks, formulaMask)
	f.gotFlags = append(f.gotFlags, recognize)
	if f.err != nil {
		return nil, f.err
	}
	if f.emitCount == 0 {
		f.emitCount = 1
	}
	var out []region.Region
	for i := 0; i < f.emitCount; i++ {
		r := region.Region{Box: f.localBox, Category: region.TextLine, Confidence: 0.9}
		if recognize {
			r.Text = f.text
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeTable struct {
	html  string
	cells []geom.Rect
	err   error
	delay time.Duration
	calls int
}

func (f *fakeTable) Name() string { return "fake-table" }

func (f *fakeTable) Recognize(ctx context.Context, img image.Image) (model.TableResult, error) {
	f.calls++
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return model.TableResult{}, f.err
	}
	return model.TableResult{HTML: f.html, CellBoxes: f.cells, Elapsed: f.delay}, nil
}

var errBackend = errors.New("backend exploded")

func candidateBoxA() geom.Rect { return geom.Rect{X0: 100, Y0: 100, X1: 400, Y1: 200} }
func candidateBoxB() geom.Rect { return geom.Rect{X0: 100, Y0: 300, X1: 400, Y1: 380} }
func localLine() geom.Rect     { return geom.Rect{X0: 60, Y0: 60, X1: 200, Y1: 90} }

func testImages(n, w, h int) []image.Image {
	imgs := make([]image.Image, n)
	for i := range imgs {
		imgs[i] = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return imgs
}

func testBundle() (*model.Bundle, *fakeLayout, *fakeOCR, *fakeTable) {
	layout := &fakeLayout{regions: []region.Region{
		{Box: geom.Rect{X0: 100, Y0: 100, X1: 400, Y1: 200}, Category: region.PlainText, Confidence: 0.95},
		{Box: geom.Rect{X0: 100, Y0: 300, X1: 400, Y1: 380}, Category: region.Title, Confidence: 0.9},
	}}
	ocr := &fakeOCR{localBox: geom.Rect{X0: 60, Y0: 60, X1: 200, Y1: 90}, text: "hello"}
	table := &fakeTable{html: "<table><tr><td>1</td></tr></table>"}
	bundle := &model.Bundle{
		Device:       &fakeDevice{available: true, total: 16 << 30},
		Layout:       layout,
		OCR:          ocr,
		Table:        table,
		ApplyOCR:     true,
		TableMaxTime: model.DefaultTableMaxTime,
	}
	return bundle, layout, ocr, table
}
