// Package enrich turns Findings into tear-sheet documents via the
// Anthropic messages API.
package enrich

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/extract"
	"github.com/sells-group/cfo-monitor/internal/model"
	"github.com/sells-group/cfo-monitor/internal/throttle"
	"github.com/sells-group/cfo-monitor/pkg/anthropic"
)

// ResourceAnthropic is the throttle resource id for enrichment requests.
const ResourceAnthropic = "anthropic"

const (
	companySuffix    = "_Company_TearSheet.docx"
	individualSuffix = "_Individual_TearSheet.docx"
)

// Engine generates company and individual tear sheets per Finding. A nil
// API client disables the engine entirely: no calls, no sheets.
type Engine struct {
	ai        anthropic.Client
	modelID   string
	maxTokens int64
	th        throttle.Throttle
	now       func() time.Time
}

// New creates the enrichment engine. Pass a nil client when no API key is
// configured.
func New(ai anthropic.Client, modelID string, maxTokens int64, th throttle.Throttle) *Engine {
	return &Engine{
		ai:        ai,
		modelID:   modelID,
		maxTokens: maxTokens,
		th:        th,
		now:       time.Now,
	}
}

// Enrich processes findings in collection order: always a company sheet,
// plus an individual sheet when a name was extracted. Each request failure
// is logged and skipped with no retry; pacing applies between findings
// regardless of the outcome of their requests. The wait runs before each
// finding, so the trailing delay after the last one is deliberately elided.
func (e *Engine) Enrich(ctx context.Context, findings []model.Finding) []model.TearSheet {
	log := zap.L()

	if e.ai == nil {
		log.Info("skipping tear sheet generation: no API key configured")
		return nil
	}

	log.Info("generating tear sheets", zap.Int("findings", len(findings)))

	var sheets []model.TearSheet
	for i, f := range findings {
		if err := e.th.Wait(ctx, ResourceAnthropic); err != nil {
			return sheets
		}

		log.Info("processing finding",
			zap.Int("index", i+1),
			zap.Int("total", len(findings)),
			zap.String("company", f.Company),
		)

		body, err := e.generate(ctx, companyPrompt(f.Company, e.now()))
		if err != nil {
			log.Warn("company tear sheet failed",
				zap.String("company", f.Company),
				zap.Error(err),
			)
		} else {
			sheets = append(sheets, model.TearSheet{
				Subject:  model.SheetCompany,
				Name:     f.Company,
				Company:  f.Company,
				Body:     body,
				Filename: extract.SanitizeFilename(f.Company) + companySuffix,
			})
		}

		if !f.HasIndividual() {
			continue
		}

		body, err = e.generate(ctx, individualPrompt(f.Individual, f.Company, e.now()))
		if err != nil {
			log.Warn("individual tear sheet failed",
				zap.String("individual", f.Individual),
				zap.Error(err),
			)
			continue
		}
		sheets = append(sheets, model.TearSheet{
			Subject:  model.SheetIndividual,
			Name:     f.Individual,
			Company:  f.Company,
			Body:     body,
			Filename: extract.SanitizeFilename(f.Individual) + individualSuffix,
		})
	}

	log.Info("tear sheet generation complete", zap.Int("sheets", len(sheets)))
	return sheets
}

func (e *Engine) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := e.ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     e.modelID,
		MaxTokens: e.maxTokens,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", eris.New("enrich: response carries no text content")
	}
	return text, nil
}
