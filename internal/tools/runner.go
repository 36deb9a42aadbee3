package tools

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// ExitNotFound is reported when the executable could not be started.
const ExitNotFound = 127

// Result is the captured outcome of one command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunner abstracts subprocess execution so package-manager calls can
// be faked in tests.
type CommandRunner interface {
	Run(name string, args ...string) (Result, error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct {
	Dir string
}

func (r ExecRunner) Run(name string, args ...string) (Result, error) {
	log.Debug().Str("cmd", name).Strs("args", args).Msg("tools: exec")
	cmd := exec.Command(name, args...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, err
	}
	res.ExitCode = 1
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		res.ExitCode = ExitNotFound
	}
	return res, err
}

// CommandError describes a failed command with its captured output.
type CommandError struct {
	Name   string
	Args   []string
	Result Result
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"command failed cmd=%s args=%q exit=%d stdout=%q stderr=%q: %v",
		e.Name,
		strings.Join(e.Args, " "),
		e.Result.ExitCode,
		strings.TrimSpace(string(e.Result.Stdout)),
		strings.TrimSpace(string(e.Result.Stderr)),
		e.Err,
	)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Run executes name through r and wraps any failure in a CommandError.
func Run(r CommandRunner, name string, args ...string) (Result, error) {
	res, err := r.Run(name, args...)
	if err != nil {
		return res, &CommandError{Name: name, Args: args, Result: res, Err: err}
	}
	return res, nil
}
