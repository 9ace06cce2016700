// Package pipeline sequences classification, field extraction, the
// category lookup and record assembly. A Processor holds no per-call
// state, so one instance is safe for concurrent extractions.
package pipeline

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/katiyar-electronics/bill-engine/internal/category"
	"github.com/katiyar-electronics/bill-engine/internal/common"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
	"github.com/katiyar-electronics/bill-engine/internal/extract"
)

// Processor is the single entry point for turning raw document text into a
// canonical bill record.
type Processor struct {
	logger *slog.Logger
	lookup category.Lookup
	now    func() time.Time
}

func NewProcessor(lookup category.Lookup, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, lookup: lookup, now: time.Now}
}

// ProcessText classifies the document, runs the matching extractor, and
// resolves the asset category from the model number. The lookup is issued
// at most once and any failure degrades to an empty category; field
// extraction itself never fails. The only hard error is undecodable input.
func (p *Processor) ProcessText(ctx context.Context, text string) (entity.BillRecord, error) {
	reqID := common.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
	}
	start := time.Now()

	if !utf8.ValidString(text) {
		p.logger.Error("pipeline.decode.failed", "req_id", reqID)
		return entity.BillRecord{}, common.NewAppError("EXTRACTION_ERROR", "document text is not valid UTF-8", common.ErrInvalidInput)
	}

	tag := extract.Classify(text)
	fields := extract.ForTemplate(tag).Extract(text)

	p.logger.Info("pipeline.extract.ok",
		"req_id", reqID,
		"template", string(tag),
		"model", fields.Model,
		"asset_cost", fields.AssetCost,
	)

	if p.lookup != nil && fields.Model != "" {
		cat, err := p.lookup.Detect(ctx, fields.Model)
		if err != nil {
			p.logger.Warn("pipeline.lookup.failed", "req_id", reqID, "model", fields.Model, "error", err)
		} else {
			fields.AssetCategory = string(cat)
		}
	}

	record := entity.BillRecord{
		BillFields: fields,
		Template:   tag,
		Date:       p.now().UTC().Format("2006-01-02"),
	}

	p.logger.Info("pipeline.record.ok",
		"req_id", reqID,
		"template", string(tag),
		"category", fields.AssetCategory,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return record, nil
}
