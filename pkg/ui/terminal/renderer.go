// Package terminal provides styled terminal output
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/arthur-debert/dotr/pkg/ui/output/styles"
)

// Renderer writes lipgloss-styled output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// styleName turns "newly-ignored" into "NewlyIgnored"
func styleName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

func label(value string) string {
	return styles.GetStyle("Label").Inherit(styles.GetStyle(styleName(value))).Render(value)
}

// RenderReport shows changed files prominently and unchanged ones muted
func (r *Renderer) RenderReport(report *sync.Report) error {
	lines := []string{styles.Render("Header", strings.ToUpper(string(report.Direction)))}
	for _, res := range report.Results {
		lines = append(lines, label(res.Outcome.String())+styles.Render("FilePath", res.Path))
	}
	if report.FailedPath != "" {
		lines = append(lines, styles.Render("Error", "stopped at ")+styles.Render("FilePath", report.FailedPath))
	}

	summaryStyle := "Muted"
	if report.Changed() {
		summaryStyle = "Success"
	}
	lines = append(lines, "", styles.Render(summaryStyle, report.Summary()))
	return r.write(lines)
}

// RenderStatus shows one styled line per file
func (r *Renderer) RenderStatus(entries []sync.Entry) error {
	if len(entries) == 0 {
		return r.RenderMessage("No files are tracked")
	}
	lines := []string{styles.Render("Header", "STATUS")}
	for _, e := range entries {
		lines = append(lines, label(string(e.Status))+styles.Render("FilePath", e.File.Path))
	}
	return r.write(lines)
}

// RenderList shows tracked paths with short hashes
func (r *Renderer) RenderList(files []types.TrackedFile) error {
	if len(files) == 0 {
		return r.RenderMessage("No files are tracked")
	}
	lines := []string{styles.Render("Header", fmt.Sprintf("TRACKED FILES (%d)", len(files)))}
	for _, f := range files {
		lines = append(lines, styles.Render("FilePath", f.Path)+"  "+styles.Render("Hash", f.ShortHash()))
	}
	return r.write(lines)
}

// RenderMessage renders an informational message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write([]string{styles.Render("Info", msg)})
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	return r.write([]string{styles.Render("Error", "Error: ") + err.Error()})
}

func (r *Renderer) write(lines []string) error {
	_, err := fmt.Fprintln(r.output, strings.Join(lines, "\n"))
	return err
}
