package report

import (
	"html/template"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/model"
)

const individualNotIdentified = "Individual name not identified"

var digestTemplate = template.Must(template.New("digest").Parse(`<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .summary { background-color: #ecf0f1; padding: 20px; margin: 20px 0; border-radius: 5px; }
        .highlight { color: #2c3e50; font-weight: bold; }
        ul { margin: 10px 0; }
        li { margin: 5px 0; }
    </style>
</head>
<body>
    <div class="summary">
        <h2>CFO Changes Summary - {{.Date}}</h2>
        <p>Our automated monitoring system has identified <span class="highlight">{{.Stats.Findings}} CFO-related changes</span> across <span class="highlight">{{.Stats.Companies}} companies</span> in the past 24 hours. We found {{.Stats.Regulatory}} official SEC filings and {{.Stats.News}} news articles reporting these executive movements. Detailed company and individual tear sheets are attached as Word documents for your review and analysis. Please see the attachments for comprehensive research on each identified change.</p>

        <h3>Quick Stats:</h3>
        <ul>
            <li><strong>Total Findings:</strong> {{.Stats.Findings}}</li>
            <li><strong>Companies Affected:</strong> {{.Stats.Companies}}</li>
            <li><strong>SEC Filings:</strong> {{.Stats.Regulatory}}</li>
            <li><strong>News Articles:</strong> {{.Stats.News}}</li>
            <li><strong>Tear Sheets Generated:</strong> {{.TearSheets}}</li>
        </ul>

        <h3>Identified Changes:</h3>
        <ul>
{{- range .Lines}}
            <li><strong>{{.Company}}</strong> - {{.Individual}}</li>
{{- end}}
        </ul>
    </div>
</body>
</html>
`))

type digestLine struct {
	Company    string
	Individual string
}

type digestData struct {
	Date       string
	Stats      model.RunStats
	TearSheets int
	Lines      []digestLine
}

func renderHTML(run *model.RunContext) string {
	data := digestData{
		Date:       run.Date.Format(dateLayout),
		Stats:      run.Stats,
		TearSheets: len(run.TearSheets),
	}
	for _, f := range run.Findings {
		line := digestLine{Company: f.Company, Individual: f.Individual}
		if line.Individual == "" {
			line.Individual = individualNotIdentified
		}
		data.Lines = append(data.Lines, line)
	}

	var b strings.Builder
	if err := digestTemplate.Execute(&b, data); err != nil {
		// Template data is plain values; execution cannot realistically
		// fail, but the digest must never abort the run.
		zap.L().Error("digest template execution failed", zap.Error(err))
		return ""
	}
	return b.String()
}
