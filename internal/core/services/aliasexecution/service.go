/*
Package aliasexecution runs aliases end to end: it resolves the invocation,
expands each command template, and sequences the resulting child processes.
*/
package aliasexecution

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dbradf/epithet/internal/core/domain/execution"
	"github.com/dbradf/epithet/internal/core/ports"
)

type service struct {
	resolver ports.AliasResolver
	engine   ports.SubstitutionEngine
	runner   ports.ProcessRunner
	logger   *log.Logger
}

// NewService creates a new alias execution service.
// It panics if the resolver, engine, or runner is nil. A nil logger disables
// debug tracing.
func NewService(
	resolver ports.AliasResolver,
	engine ports.SubstitutionEngine,
	runner ports.ProcessRunner,
	logger *log.Logger,
) ports.AliasExecutionService {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &service{
		resolver: resolver,
		engine:   engine,
		runner:   runner,
		logger:   logger,
	}
}

/*
Run resolves name against the configuration and interprets the selected
execution as a sequence of child invocations, aggregating their statuses into
a single Outcome.

A Command runs once. An And runs every item in order and stops at the first
failure, whose exit code becomes the outcome. An Or runs items until one
succeeds; when all fail, the last exit code becomes the outcome. A Pipeline
fails with execution.ErrPipelineUnsupported, and an alias resolving to
nothing succeeds without spawning anything.
*/
func (s *service) Run(name string, args []string) (execution.Outcome, error) {
	resolution, err := s.resolver.Resolve(name, args)
	if err != nil {
		return execution.Outcome{Code: 1}, err
	}

	switch exec := resolution.Exec.(type) {
	case nil:
		s.logger.Debug("alias resolves to nothing", "alias", name)
		return execution.Outcome{}, nil
	case execution.Command:
		return s.runAll(name, []string{string(exec)}, resolution)
	case execution.And:
		return s.runAll(name, exec, resolution)
	case execution.Or:
		return s.runUntilSuccess(name, exec, resolution)
	case execution.Pipeline:
		return execution.Outcome{Code: 1}, fmt.Errorf("alias %s: %w", name, execution.ErrPipelineUnsupported)
	default:
		return execution.Outcome{Code: 1}, fmt.Errorf("alias %s: unhandled execution type %T", name, exec)
	}
}

// runAll invokes every template in order and stops at the first non-zero
// status, whose exit code becomes the outcome.
func (s *service) runAll(name string, templates []string, resolution ports.Resolution) (execution.Outcome, error) {
	for _, template := range templates {
		status, err := s.invoke(name, template, resolution)
		if err != nil {
			return execution.Outcome{Code: 1}, err
		}
		if !status.Success() {
			return execution.Outcome{Code: status.ExitCode()}, nil
		}
	}
	return execution.Outcome{}, nil
}

// runUntilSuccess invokes templates in order until one succeeds. When no
// item succeeds, the last status's exit code becomes the outcome.
func (s *service) runUntilSuccess(name string, templates []string, resolution ports.Resolution) (execution.Outcome, error) {
	last := execution.Status{Code: 1}
	for _, template := range templates {
		status, err := s.invoke(name, template, resolution)
		if err != nil {
			return execution.Outcome{Code: 1}, err
		}
		if status.Success() {
			return execution.Outcome{}, nil
		}
		last = status
	}
	return execution.Outcome{Code: last.ExitCode()}, nil
}

// invoke expands one template and runs the resulting command.
func (s *service) invoke(name, template string, resolution ports.Resolution) (execution.Status, error) {
	tokens := s.engine.Expand(template, resolution.Args, resolution.Expansions)
	if len(tokens) == 0 {
		return execution.Status{}, fmt.Errorf("alias %s: template %q expanded to an empty command", name, template)
	}

	s.logger.Debug("spawning child", "alias", name, "argv", tokens)
	status, err := s.runner.Run(tokens)
	if err != nil {
		return execution.Status{}, err
	}
	s.logger.Debug("child terminated", "alias", name, "code", status.Code, "signaled", status.Signaled)

	return status, nil
}
