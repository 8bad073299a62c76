// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// statusFile is one file in status output
type statusFile struct {
	Path   string          `json:"path"`
	Hash   string          `json:"hash"`
	Status sync.FileStatus `json:"status"`
}

// RenderReport encodes the report as is
func (r *Renderer) RenderReport(report *sync.Report) error {
	return r.encoder.Encode(report)
}

// RenderStatus encodes {"files": [{path, hash, status}]}
func (r *Renderer) RenderStatus(entries []sync.Entry) error {
	files := make([]statusFile, 0, len(entries))
	for _, e := range entries {
		files = append(files, statusFile{Path: e.File.Path, Hash: e.File.Hash, Status: e.Status})
	}
	return r.encoder.Encode(map[string]interface{}{"files": files})
}

// RenderList encodes {"files": [{path, hash}]}
func (r *Renderer) RenderList(files []types.TrackedFile) error {
	if files == nil {
		files = []types.TrackedFile{}
	}
	return r.encoder.Encode(map[string]interface{}{"files": files})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

// RenderError renders an error and its code as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}
