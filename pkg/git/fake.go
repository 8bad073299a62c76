package git

import (
	"context"
	"strings"
	"sync"
)

// FakeRunner is a scripted Runner for tests. Responses are keyed by the
// space-joined argument list; unknown commands succeed with empty output.
type FakeRunner struct {
	mu        sync.Mutex
	Calls     [][]string
	Responses map[string]FakeResponse
}

// FakeResponse is the scripted result of one command
type FakeResponse struct {
	Out string
	Err error
}

// NewFakeRunner returns an empty fake
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]FakeResponse)}
}

// On scripts the response for args
func (f *FakeRunner) On(out string, err error, args ...string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[strings.Join(args, " ")] = FakeResponse{Out: out, Err: err}
	return f
}

func (f *FakeRunner) Run(_ context.Context, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, append([]string(nil), args...))
	resp := f.Responses[strings.Join(args, " ")]
	return resp.Out, resp.Err
}

// Commands returns the calls as space-joined strings
func (f *FakeRunner) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = strings.Join(c, " ")
	}
	return out
}
