// Package report assembles the outbound digest: HTML summary plus one
// document attachment per tear sheet.
package report

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/model"
	"github.com/sells-group/cfo-monitor/internal/render"
)

const dateLayout = "January 2, 2006"

// Assembler builds the digest email from a completed run.
type Assembler struct {
	renderer render.Renderer
}

// NewAssembler creates an Assembler using the given document renderer.
func NewAssembler(r render.Renderer) *Assembler {
	return &Assembler{renderer: r}
}

// Assemble builds the subject, HTML body, and attachments. A tear sheet
// whose document rendering fails degrades to a plain-text attachment; the
// sheet is never dropped.
func (a *Assembler) Assemble(run *model.RunContext) model.Report {
	report := model.Report{
		Subject:  fmt.Sprintf("CFO Changes Alert - %s (%d findings)", run.Date.Format(dateLayout), len(run.Findings)),
		HTMLBody: renderHTML(run),
	}

	for _, sheet := range run.TearSheets {
		data, contentType, err := a.renderer.Render(sheet.Body)
		if err != nil {
			zap.L().Warn("document rendering unavailable, attaching plain text",
				zap.String("filename", sheet.Filename),
				zap.Error(err),
			)
			report.Attachments = append(report.Attachments, model.Attachment{
				Filename:    strings.TrimSuffix(sheet.Filename, ".docx") + ".txt",
				ContentType: "text/plain",
				Data:        []byte(sheet.Body),
			})
			continue
		}
		report.Attachments = append(report.Attachments, model.Attachment{
			Filename:    sheet.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	return report
}
