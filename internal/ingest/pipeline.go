package ingest

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nhongkham198/SGdelivery/internal/logger"
	"github.com/Nhongkham198/SGdelivery/internal/sheet"
)

// Source produces the workbook's sheets in order. The HTTP client in
// internal/sheet is the production implementation.
type Source interface {
	Sheets(ctx context.Context) ([]sheet.Sheet, error)
}

// Pipeline is one-shot and stateless between runs: every Load starts from
// empty accumulators and returns a fresh immutable snapshot.
type Pipeline struct {
	source Source
}

func NewPipeline(source Source) *Pipeline {
	return &Pipeline{source: source}
}

// Load runs one full ingestion pass. Acquisition failures (unreachable host,
// HTML login page instead of a workbook) degrade to the empty sentinel —
// they are logged here and never surface as an error to callers, so the
// storefront renders an empty state instead of crashing.
func (p *Pipeline) Load(ctx context.Context) MenuData {
	sheets, err := p.source.Sheets(ctx)
	if err != nil {
		logger.L().Warn("menu ingestion failed, serving empty menu", zap.Error(err))
		return MenuData{Items: []MenuItem{}}
	}

	acc := newAccumulator()
	skipped := 0
	for _, sh := range sheets {
		if len(sh.Rows) == 0 {
			skipped++
			continue
		}
		headerIdx := DetectHeaderRow(sh.Rows)
		headers := sh.Rows[headerIdx]
		for i := headerIdx + 1; i < len(sh.Rows); i++ {
			acc.Fold(ResolveFields(headers, sh.Rows[i]))
		}
	}

	data := acc.Finalize()
	logger.L().Info("menu ingested",
		zap.Int("sheets", len(sheets)),
		zap.Int("empty_sheets", skipped),
		zap.Int("items", len(data.Items)),
	)
	return data
}
