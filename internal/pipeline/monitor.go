// Package pipeline orchestrates one monitor run: scan sources, enrich
// findings, assemble the digest, and deliver it.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/collect"
	"github.com/sells-group/cfo-monitor/internal/mail"
	"github.com/sells-group/cfo-monitor/internal/model"
	"github.com/sells-group/cfo-monitor/internal/source"
	"github.com/sells-group/cfo-monitor/internal/store"
)

// Enricher turns findings into tear sheets.
type Enricher interface {
	Enrich(ctx context.Context, findings []model.Finding) []model.TearSheet
}

// Assembler builds the outgoing report from a completed run.
type Assembler interface {
	Assemble(run *model.RunContext) model.Report
}

// Monitor runs the scan-enrich-report-send sequence. The store is optional;
// when present each run is recorded with its result.
type Monitor struct {
	sources   []source.Scanner
	enricher  Enricher
	assembler Assembler
	mailer    mail.Mailer
	store     store.Store
	now       func() time.Time
}

// New creates a Monitor. Pass a nil store to skip run history.
func New(sources []source.Scanner, enricher Enricher, assembler Assembler, mailer mail.Mailer, st store.Store) *Monitor {
	return &Monitor{
		sources:   sources,
		enricher:  enricher,
		assembler: assembler,
		mailer:    mailer,
		store:     st,
		now:       time.Now,
	}
}

// Run executes one complete monitor pass. Source, enrichment, and delivery
// failures degrade the run rather than failing it; the returned error covers
// only context cancellation.
func (m *Monitor) Run(ctx context.Context) (*model.RunResult, error) {
	log := zap.L()
	log.Info("starting CFO change scan", zap.Int("sources", len(m.sources)))

	var runID string
	if m.store != nil {
		run, err := m.store.CreateRun(ctx)
		if err != nil {
			log.Warn("failed to record run", zap.Error(err))
		} else {
			runID = run.ID
		}
	}

	col := collect.New()
	for _, s := range m.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := s.Scan(ctx, col)
		log.Info("source scan complete", zap.Int("accepted", n))
	}

	result := &model.RunResult{
		Stats:    col.Stats(),
		Findings: col.Findings(),
	}

	if col.Len() == 0 {
		log.Info("no CFO changes found, skipping email")
		m.completeRun(ctx, runID, result)
		return result, nil
	}

	runCtx := &model.RunContext{
		Date:     m.now(),
		Findings: result.Findings,
		Stats:    result.Stats,
	}
	runCtx.TearSheets = m.enricher.Enrich(ctx, runCtx.Findings)
	result.TearSheets = len(runCtx.TearSheets)

	report := m.assembler.Assemble(runCtx)
	if err := m.mailer.Send(ctx, report); err != nil {
		log.Warn("email delivery failed", zap.Error(err))
	} else {
		result.EmailSent = true
	}

	log.Info("scan complete",
		zap.Int("findings", result.Stats.Findings),
		zap.Int("tear_sheets", result.TearSheets),
		zap.Bool("email_sent", result.EmailSent),
	)

	m.completeRun(ctx, runID, result)
	return result, nil
}

func (m *Monitor) completeRun(ctx context.Context, runID string, result *model.RunResult) {
	if m.store == nil || runID == "" {
		return
	}
	if err := m.store.CompleteRun(ctx, runID, result); err != nil {
		zap.L().Warn("failed to save run result", zap.Error(err))
	}
}
