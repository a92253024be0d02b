package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/enrich"
	"github.com/sells-group/cfo-monitor/internal/mail"
	"github.com/sells-group/cfo-monitor/internal/pipeline"
	"github.com/sells-group/cfo-monitor/internal/render"
	"github.com/sells-group/cfo-monitor/internal/report"
	"github.com/sells-group/cfo-monitor/internal/source"
	"github.com/sells-group/cfo-monitor/internal/store"
	"github.com/sells-group/cfo-monitor/internal/throttle"
	anthropicpkg "github.com/sells-group/cfo-monitor/pkg/anthropic"
	"github.com/sells-group/cfo-monitor/pkg/edgar"
	"github.com/sells-group/cfo-monitor/pkg/gnews"
)

var scanNoStore bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one full monitor pass",
	Long:  "Scans all sources for CFO changes, generates tear sheets, and emails the digest. Sends nothing when no changes are found.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate(); err != nil {
			return err
		}

		// Run history is best effort: a broken database never blocks a scan.
		var st store.Store
		if !scanNoStore {
			sqlite, err := store.NewSQLite(cfg.Store.Path)
			if err != nil {
				zap.L().Warn("run history unavailable", zap.Error(err))
			} else if err := sqlite.Migrate(ctx); err != nil {
				zap.L().Warn("run history migration failed", zap.Error(err))
				sqlite.Close() //nolint:errcheck
			} else {
				st = sqlite
				defer sqlite.Close() //nolint:errcheck
			}
		}

		userAgent := cfg.Edgar.UserAgent
		if userAgent == "" {
			userAgent = cfg.SMTP.From + " CFO Monitor Script"
		}

		th := throttle.NewLimiter(map[string]time.Duration{
			source.ResourceNewsFeed:  cfg.News.Pace(),
			enrich.ResourceAnthropic: cfg.Anthropic.Pace(),
		})

		sources := []source.Scanner{
			source.NewRegulatory(edgar.NewClient(userAgent), cfg.Edgar.FormType, cfg.Edgar.Count),
			source.NewNews(gnews.NewClient(), source.NewsConfig{
				Queries:  cfg.News.Queries,
				PerQuery: cfg.News.PerQuery,
				MaxAge:   cfg.News.MaxAge(),
			}, th),
		}

		var aiClient anthropicpkg.Client
		if cfg.Anthropic.Key != "" {
			aiClient = anthropicpkg.NewClient(cfg.Anthropic.Key)
		}
		engine := enrich.New(aiClient, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens, th)

		assembler := report.NewAssembler(render.Docx{})
		mailer := mail.NewSMTP(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
			Password: cfg.SMTP.Password,
		})

		mon := pipeline.New(sources, engine, assembler, mailer, st)
		result, err := mon.Run(ctx)
		if err != nil {
			return eris.Wrap(err, "scan")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanNoStore, "no-store", false, "skip recording this run in the history database")
	rootCmd.AddCommand(scanCmd)
}
