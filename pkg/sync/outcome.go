package sync

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotr/pkg/types"
)

// Outcome is the terminal state of a single file sync
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeUpdated
	OutcomeUntracked
	OutcomeIgnored
	OutcomeNewlyIgnored
	OutcomeMaterialized
)

var outcomeNames = map[Outcome]string{
	OutcomeUnchanged:    "unchanged",
	OutcomeUpdated:      "updated",
	OutcomeUntracked:    "untracked",
	OutcomeIgnored:      "ignored",
	OutcomeNewlyIgnored: "newly-ignored",
	OutcomeMaterialized: "materialized",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText renders the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Changed reports whether the outcome touched the filesystem
func (o Outcome) Changed() bool {
	switch o {
	case OutcomeUpdated, OutcomeUntracked, OutcomeNewlyIgnored, OutcomeMaterialized:
		return true
	}
	return false
}

// Direction names a batch run
type Direction string

const (
	DirectionPush Direction = "push"
	DirectionPull Direction = "pull"
)

// Result is the outcome of one file in a batch
type Result struct {
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
}

// Report collects the results of a batch run. When the batch stopped early,
// FailedPath names the file that failed and Results holds everything
// processed before it.
type Report struct {
	Direction  Direction `json:"direction"`
	Results    []Result  `json:"results"`
	FailedPath string    `json:"failed_path,omitempty"`
}

func (r *Report) add(file types.TrackedFile, outcome Outcome) {
	r.Results = append(r.Results, Result{Path: file.Path, Outcome: outcome})
}

// Count returns how many files ended in outcome
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Changed reports whether any file was touched
func (r *Report) Changed() bool {
	for _, res := range r.Results {
		if res.Outcome.Changed() {
			return true
		}
	}
	return false
}

// Summary renders the per-outcome counts, e.g. "5 unchanged, 2 updated"
func (r *Report) Summary() string {
	if len(r.Results) == 0 {
		return "no tracked files"
	}
	var parts []string
	for o := OutcomeUnchanged; o <= OutcomeMaterialized; o++ {
		if n := r.Count(o); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, o))
		}
	}
	return strings.Join(parts, ", ")
}

// FileStatus is the read-only state of a tracked file
type FileStatus string

const (
	StatusClean          FileStatus = "clean"
	StatusModified       FileStatus = "modified"
	StatusLiveMissing    FileStatus = "live-missing"
	StatusIgnored        FileStatus = "ignored"
	StatusNotStored      FileStatus = "not-stored"
	StatusStorageMissing FileStatus = "storage-missing"
)
