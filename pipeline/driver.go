package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/lemonit-eric-mao/MinerU/accel"
	"github.com/lemonit-eric-mao/MinerU/config"
	"github.com/lemonit-eric-mao/MinerU/dataset"
	"github.com/lemonit-eric-mao/MinerU/model"
	"github.com/lemonit-eric-mao/MinerU/observability"
	"github.com/lemonit-eric-mao/MinerU/region"
)

// InferenceResult bundles the per-page records with the dataset they were
// computed from.
type InferenceResult struct {
	Pages   []region.PageRecord
	Dataset dataset.Dataset
}

// batchRenderer is implemented by datasets that can render several pages
// concurrently (the PDF dataset does).
type batchRenderer interface {
	Pages(ctx context.Context, indices []int) ([]dataset.Page, error)
}

// AnalyzeDocument runs the batch pipeline over the in-range pages of a
// document and returns one PageRecord for every page of the dataset; pages
// outside the range carry an empty region list. The accelerator is probed
// before any model is resolved or page rendered: an unavailable device
// fails the whole call with accel.ErrUnavailable, there is no CPU fallback
// for batched execution.
func AnalyzeDocument(ctx context.Context, ds dataset.Dataset, provider *model.Provider, device accel.Device, opts config.Options, analyzerOpts ...Option) (*InferenceResult, error) {
	if device == nil {
		device = accel.CUDA()
	}
	if !device.Available() {
		return nil, accel.ErrUnavailable
	}

	opts = opts.Normalize(ds.Len())

	var logger observability.Logger = observability.NopLogger{}
	if opts.ShowLog {
		logger = observability.NewStdLogger(nil)
	}

	bundle, err := provider.Bundle(model.Key{
		OCR:         opts.OCR,
		ShowLog:     opts.ShowLog,
		Lang:        opts.Lang,
		LayoutModel: opts.LayoutModel,
		Formula:     opts.Formula,
		Table:       opts.Table,
	})
	if err != nil {
		return nil, err
	}

	pages, err := renderPages(ctx, ds)
	if err != nil {
		return nil, err
	}

	var images []image.Image
	for i := opts.StartPage; i <= opts.EndPage && i < len(pages); i++ {
		images = append(images, pages[i].Image)
	}

	analyzer := NewBatchAnalyzer(bundle, opts.BatchRatio, append([]Option{WithLogger(logger)}, analyzerOpts...)...)
	batch, err := analyzer.Analyze(ctx, images)
	if err != nil {
		return nil, err
	}

	records := make([]region.PageRecord, 0, ds.Len())
	next := 0
	for i := 0; i < ds.Len(); i++ {
		rec := region.PageRecord{
			PageNo:  i,
			Width:   pages[i].Width,
			Height:  pages[i].Height,
			Regions: []region.Region{},
		}
		if i >= opts.StartPage && i <= opts.EndPage {
			if batch[next] != nil {
				rec.Regions = batch[next]
			}
			next++
		}
		records = append(records, rec)
	}

	accel.Clean(device, logger)
	return &InferenceResult{Pages: records, Dataset: ds}, nil
}

func renderPages(ctx context.Context, ds dataset.Dataset) ([]dataset.Page, error) {
	n := ds.Len()
	if br, ok := ds.(batchRenderer); ok {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		pages, err := br.Pages(ctx, indices)
		if err != nil {
			return nil, fmt.Errorf("render pages: %w", err)
		}
		return pages, nil
	}
	pages := make([]dataset.Page, n)
	for i := 0; i < n; i++ {
		page, err := ds.Page(i)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i, err)
		}
		pages[i] = page
	}
	return pages, nil
}
