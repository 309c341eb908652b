package testutil

import (
	"errors"

	"github.com/dbradf/epithet/internal/core/domain/execution"
)

// MockProcessRunner is a mock implementation of ports.ProcessRunner.
type MockProcessRunner struct {
	RunFunc func(tokens []string) (execution.Status, error)
}

// Run calls the mock RunFunc.
func (m *MockProcessRunner) Run(tokens []string) (execution.Status, error) {
	if m.RunFunc != nil {
		return m.RunFunc(tokens)
	}
	return execution.Status{}, errors.New("MockProcessRunner.RunFunc not implemented")
}
