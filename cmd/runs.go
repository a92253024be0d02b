package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/cfo-monitor/internal/model"
	"github.com/sells-group/cfo-monitor/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect scan run history",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded scans",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := st.ListRuns(ctx, limit)
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs found.")
			return nil
		}

		formatRunsList(os.Stdout, runs)
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show full details of a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	},
}

func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

func init() {
	runsListCmd.Flags().Int("limit", 50, "max number of runs to display")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

// formatRunsList writes a tabular list of runs to w.
func formatRunsList(out io.Writer, runs []model.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tFINDINGS\tSHEETS\tEMAIL\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t------\t--------\t------\t-----\t-------")

	for _, r := range runs {
		findings, sheets, email := "-", "-", "-"
		if r.Result != nil {
			findings = fmt.Sprintf("%d", r.Result.Stats.Findings)
			sheets = fmt.Sprintf("%d", r.Result.TearSheets)
			email = fmt.Sprintf("%t", r.Result.EmailSent)
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncateID(r.ID),
			r.Status,
			findings,
			sheets,
			email,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
