package sync

import (
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/types"
)

// Decision is the answer to "create this missing live file?"
type Decision int

const (
	DecisionIgnore Decision = iota
	DecisionCreate
)

func (d Decision) String() string {
	if d == DecisionCreate {
		return "create"
	}
	return "ignore"
}

// MissingFilePolicy decides whether a tracked file absent from the base
// directory should be materialized from storage
type MissingFilePolicy interface {
	Resolve(file types.TrackedFile, livePath string) (Decision, error)
}

// PolicyFunc adapts a function to MissingFilePolicy
type PolicyFunc func(file types.TrackedFile, livePath string) (Decision, error)

func (f PolicyFunc) Resolve(file types.TrackedFile, livePath string) (Decision, error) {
	return f(file, livePath)
}

var (
	// AlwaysCreate materializes every missing file
	AlwaysCreate MissingFilePolicy = PolicyFunc(func(types.TrackedFile, string) (Decision, error) {
		return DecisionCreate, nil
	})

	// AlwaysIgnore declines every missing file
	AlwaysIgnore MissingFilePolicy = PolicyFunc(func(types.TrackedFile, string) (Decision, error) {
		return DecisionIgnore, nil
	})

	noPolicy MissingFilePolicy = PolicyFunc(func(file types.TrackedFile, _ string) (Decision, error) {
		return DecisionIgnore, errors.Newf(errors.ErrPrompt,
			"%s is missing and no policy was configured to decide about it", file.Path)
	})
)
