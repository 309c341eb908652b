/*
Package symlinks gives the installation service access to the on-disk alias
link directory.
*/
package symlinks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dbradf/epithet/internal/core/ports"
)

// DefaultBinDir returns the directory alias links are installed into,
// $HOME/.local/epithet/bin.
func DefaultBinDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".local", "epithet", "bin"), nil
}

// Accessor implements the LinkAccessor interface against the real
// filesystem.
type Accessor struct{}

// NewAccessor creates a new Accessor.
func NewAccessor() ports.LinkAccessor {
	return &Accessor{}
}

// ExecutablePath returns the path of the running binary with symlinks
// resolved, so installed links point at the real executable rather than at
// each other.
func (a *Accessor) ExecutablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate the running executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize executable path %s: %w", exe, err)
	}
	return resolved, nil
}

// EnsureDir creates dir and any missing parents, reporting whether it had to
// be created.
func (a *Accessor) EnsureDir(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether path exists, using Lstat so a dangling symlink
// still counts and can be replaced instead of colliding.
func (a *Accessor) Exists(path string) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, err
	}
}

// Remove deletes the link at path.
func (a *Accessor) Remove(path string) error {
	return os.Remove(path)
}

// Symlink creates a symlink at link pointing to target.
func (a *Accessor) Symlink(target, link string) error {
	return os.Symlink(target, link)
}
