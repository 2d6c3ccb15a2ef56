package arcstats

import (
	"context"
	"os/exec"
	"strings"

	"arcwatch/internal/errors"
	"arcwatch/internal/logger"
)

// Default command used to obtain raw ARC statistics.
const (
	DefaultSourceCommand = "sysctl"
)

// DefaultSourceArgs returns the default arguments for the stats command.
func DefaultSourceArgs() []string {
	return []string{Prefix}
}

// Source produces raw `key: value` statistics text for one poll cycle.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// CommandSource fetches statistics by running an external command and
// capturing its stdout. A missing executable or non-zero exit is a
// retrieval failure (error code SOURCE); the caller is expected to keep
// its previous snapshot and retry on the next tick.
type CommandSource struct {
	name string
	args []string
	log  logger.Logger
}

// NewCommandSource creates a source that runs the given command.
// Empty name falls back to the default sysctl invocation.
func NewCommandSource(name string, args ...string) *CommandSource {
	if name == "" {
		name = DefaultSourceCommand
		args = DefaultSourceArgs()
	}
	return &CommandSource{
		name: name,
		args: args,
		log:  logger.NewEnvLogger("[source]"),
	}
}

// SetLogger replaces the source's logger. Useful for tests.
func (s *CommandSource) SetLogger(l logger.Logger) {
	s.log = l
}

// Command returns the command and arguments the source will run.
func (s *CommandSource) Command() (string, []string) {
	return s.name, s.args
}

// Fetch runs the stats command and returns its stdout.
//
// No timeout is imposed beyond the passed context: the caller runs Fetch
// off the presentation thread, so a hung command stalls only that poll.
func (s *CommandSource) Fetch(ctx context.Context) (string, error) {
	s.log.Debug("running %s %s", s.name, strings.Join(s.args, " "))

	cmd := exec.CommandContext(ctx, s.name, s.args...)
	out, err := cmd.Output()
	if err != nil {
		// Include stderr detail when the command ran but exited non-zero.
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			err = errors.Wrap(err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		s.log.Debug("fetch failed: %v", err)
		return "", errors.WrapWithCode(err, errors.ErrSource,
			"Couldn't read ARC statistics",
			"Make sure '"+s.name+"' is installed and the ZFS module is loaded.")
	}

	return string(out), nil
}

// IsRetrievalError reports whether err is a stats retrieval failure.
func IsRetrievalError(err error) bool {
	return errors.IsCode(err, errors.ErrSource)
}

// StaticSource returns fixed text from Fetch. It backs the dump command's
// tests and any caller that wants to replay captured output.
type StaticSource struct {
	Raw string
	Err error
}

// Fetch returns the configured text or error.
func (s StaticSource) Fetch(ctx context.Context) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Raw, nil
}
