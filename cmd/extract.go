package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/cfo-monitor/internal/extract"
)

var (
	extractTitle   string
	extractSummary string
)

// extractResult is the JSON shape printed by the extract command.
type extractResult struct {
	Company    string `json:"company"`
	Individual string `json:"individual,omitempty"`
	Rule       string `json:"rule,omitempty"`
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Debug name and company extraction on a headline",
	RunE: func(cmd *cobra.Command, args []string) error {
		res := extractResult{
			Company: extract.CompanyName(extractTitle),
		}
		if m, ok := extract.IndividualName(extractTitle, extractSummary); ok {
			res.Individual = m.Name
			res.Rule = m.Rule
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractTitle, "title", "", "article title (required)")
	extractCmd.Flags().StringVar(&extractSummary, "summary", "", "article summary")
	_ = extractCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(extractCmd)
}
