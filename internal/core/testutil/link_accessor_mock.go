package testutil

import "errors"

// MockLinkAccessor is a mock implementation of ports.LinkAccessor.
type MockLinkAccessor struct {
	ExecutablePathFunc func() (string, error)
	EnsureDirFunc      func(dir string) (bool, error)
	ExistsFunc         func(path string) (bool, error)
	RemoveFunc         func(path string) error
	SymlinkFunc        func(target, link string) error
}

// ExecutablePath calls the mock ExecutablePathFunc.
func (m *MockLinkAccessor) ExecutablePath() (string, error) {
	if m.ExecutablePathFunc != nil {
		return m.ExecutablePathFunc()
	}
	return "", errors.New("MockLinkAccessor.ExecutablePathFunc not implemented")
}

// EnsureDir calls the mock EnsureDirFunc.
func (m *MockLinkAccessor) EnsureDir(dir string) (bool, error) {
	if m.EnsureDirFunc != nil {
		return m.EnsureDirFunc(dir)
	}
	return false, errors.New("MockLinkAccessor.EnsureDirFunc not implemented")
}

// Exists calls the mock ExistsFunc.
func (m *MockLinkAccessor) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	return false, errors.New("MockLinkAccessor.ExistsFunc not implemented")
}

// Remove calls the mock RemoveFunc.
func (m *MockLinkAccessor) Remove(path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	return errors.New("MockLinkAccessor.RemoveFunc not implemented")
}

// Symlink calls the mock SymlinkFunc.
func (m *MockLinkAccessor) Symlink(target, link string) error {
	if m.SymlinkFunc != nil {
		return m.SymlinkFunc(target, link)
	}
	return errors.New("MockLinkAccessor.SymlinkFunc not implemented")
}
