package pipeline

import (
	"context"
	"image"
	"time"

	"github.com/lemonit-eric-mao/MinerU/imaging"
	"github.com/lemonit-eric-mao/MinerU/observability"
	"github.com/lemonit-eric-mao/MinerU/region"
	"github.com/lemonit-eric-mao/MinerU/tablehtml"
)

// runTables processes every table-candidate region of one page. Failures
// here are soft: a region whose markup is missing or malformed is left
// without content and processing continues. The per-table time budget is
// advisory; an overrun is logged but the result is still used.
func (b *BatchAnalyzer) runTables(ctx context.Context, img image.Image, page []region.Region, split region.SplitResult) {
	start := time.Now()

	for _, idx := range split.Tables {
		res := &page[idx]
		crop := imaging.ToRGBA(imaging.Crop(img, res.Box))

		regionStart := time.Now()
		result, err := b.bundle.Table.Recognize(ctx, crop)
		elapsed := time.Since(regionStart)

		if budget := b.bundle.TableMaxTime; budget > 0 && elapsed > budget {
			b.logger.Warn("table recognition processing exceeds max time",
				observability.Duration("elapsed", elapsed),
				observability.Duration("budget", budget))
		}
		if err != nil {
			b.logger.Warn("table recognition processing fails",
				observability.String("backend", b.bundle.Table.Name()),
				observability.Error("err", err))
			continue
		}
		if result.HTML == "" {
			b.logger.Warn("table recognition processing fails, not get html return")
			continue
		}
		if !tablehtml.Valid(result.HTML) {
			b.logger.Warn("table recognition processing fails, not found expected HTML table end")
			continue
		}

		res.HTML = result.HTML
		res.CellBoxes = result.CellBoxes
		if cells, err := tablehtml.CellCount(result.HTML); err == nil {
			b.logger.Debug("table recognized",
				observability.Int("cells", cells),
				observability.Duration("elapsed", elapsed))
		}
	}

	b.logger.Info("table time", observability.Duration(observability.MetricTableTime, time.Since(start)))
}
