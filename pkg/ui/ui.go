// Package ui renders command results in terminal (styled), text (plain) or
// JSON form.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/arthur-debert/dotr/pkg/ui/json"
	"github.com/arthur-debert/dotr/pkg/ui/terminal"
	"github.com/arthur-debert/dotr/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderReport renders the outcome of a push or pull batch
	RenderReport(report *sync.Report) error

	// RenderStatus renders per-file status
	RenderStatus(entries []sync.Entry) error

	// RenderList renders the tracked files
	RenderList(files []types.TrackedFile) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
