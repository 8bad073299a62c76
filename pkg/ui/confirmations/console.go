// Package confirmations asks the operator about missing files and free-text
// settings on the console.
package confirmations

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/pterm/pterm"
)

// ConsoleDialog implements sync.MissingFilePolicy and git.Asker on a console.
// With Interactive set, yes/no questions use pterm's interactive confirm;
// otherwise a line is read from the input.
type ConsoleDialog struct {
	in          *bufio.Reader
	out         io.Writer
	Interactive bool
}

// NewConsoleDialog creates a dialog on in and out
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// NewStdDialog creates a dialog on the process's stdin and stdout
func NewStdDialog(interactive bool) *ConsoleDialog {
	d := NewConsoleDialog(os.Stdin, os.Stdout)
	d.Interactive = interactive
	return d
}

// IsAffirmative accepts y and yes in any case
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Resolve asks whether to create a tracked file that is missing from the
// base directory. Anything but an affirmative answer declines.
func (d *ConsoleDialog) Resolve(file types.TrackedFile, livePath string) (sync.Decision, error) {
	question := fmt.Sprintf("The file %s does not exist. Create it?", livePath)
	logger := logging.GetLogger("confirmations")

	if d.Interactive {
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			Show(question)
		if err != nil {
			return sync.DecisionIgnore, errors.Wrap(err, errors.ErrPrompt, "failed to read confirmation")
		}
		logger.Debug().Str("path", file.Path).Bool("create", ok).Msg("Missing file decision")
		return decision(ok), nil
	}

	answer, err := d.Ask(question + " [y/N]")
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return sync.DecisionIgnore, err
		}
		// closed input is a "no"
		logger.Debug().Str("path", file.Path).Msg("Input closed, declining")
		_, _ = fmt.Fprintln(d.out)
		return sync.DecisionIgnore, nil
	}
	ok := IsAffirmative(answer)
	logger.Debug().Str("path", file.Path).Bool("create", ok).Msg("Missing file decision")
	return decision(ok), nil
}

// Ask prints message and returns the next input line without its newline
func (d *ConsoleDialog) Ask(message string) (string, error) {
	if _, err := fmt.Fprintf(d.out, "%s ", message); err != nil {
		return "", errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
	}

	line, err := d.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		if err == io.EOF {
			return "", errors.Wrap(err, errors.ErrPrompt, "no answer: input closed")
		}
		return "", errors.Wrap(err, errors.ErrPrompt, "failed to read answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func decision(create bool) sync.Decision {
	if create {
		return sync.DecisionCreate
	}
	return sync.DecisionIgnore
}
