// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/types"
)

// Renderer writes aligned plain text
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport lists every file with its outcome, then a summary line
func (r *Renderer) RenderReport(report *sync.Report) error {
	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	for _, res := range report.Results {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", res.Outcome, res.Path); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.FailedPath != "" {
		if _, err := fmt.Fprintf(r.output, "%s stopped at %s\n", report.Direction, report.FailedPath); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.output, "%s: %s\n", report.Direction, report.Summary())
	return err
}

// RenderStatus lists every file with its status
func (r *Renderer) RenderStatus(entries []sync.Entry) error {
	if len(entries) == 0 {
		return r.RenderMessage("No files are tracked")
	}
	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", e.Status, e.File.Path); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderList lists tracked paths with short hashes
func (r *Renderer) RenderList(files []types.TrackedFile) error {
	if len(files) == 0 {
		return r.RenderMessage("No files are tracked")
	}
	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	for _, f := range files {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", f.Path, f.ShortHash()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}
