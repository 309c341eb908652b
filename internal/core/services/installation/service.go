/*
Package installation maintains the directory of per-alias symlinks that lets
aliases be invoked by name.
*/
package installation

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dbradf/epithet/internal/core/domain/alias"
	"github.com/dbradf/epithet/internal/core/ports"
)

type service struct {
	config *alias.Config
	links  ports.LinkAccessor
	binDir string
	logger *log.Logger
}

// NewService creates a new installation service writing links into binDir.
// It panics if the configuration or link accessor is nil, or binDir is
// empty. A nil logger disables debug tracing.
func NewService(config *alias.Config, links ports.LinkAccessor, binDir string, logger *log.Logger) ports.InstallationService {
	if config == nil {
		panic("config cannot be nil")
	}
	if links == nil {
		panic("link accessor cannot be nil")
	}
	if binDir == "" {
		panic("bin directory cannot be empty")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &service{
		config: config,
		links:  links,
		binDir: binDir,
		logger: logger,
	}
}

/*
Install creates one symlink per configured alias in the service's bin
directory, each pointing at the running binary. Aliases are processed in
sorted name order. An existing link is skipped unless force is set, in which
case it is removed and recreated.
*/
func (s *service) Install(force bool) (ports.InstallReport, error) {
	report := ports.InstallReport{BinDir: s.binDir}

	binary, err := s.links.ExecutablePath()
	if err != nil {
		return report, fmt.Errorf("failed to locate the running executable: %w", err)
	}
	report.Binary = binary

	created, err := s.links.EnsureDir(s.binDir)
	if err != nil {
		return report, fmt.Errorf("failed to create alias directory %s: %w", s.binDir, err)
	}
	report.BinDirCreated = created

	for _, name := range s.config.Names() {
		linkPath := filepath.Join(s.binDir, name)
		result := ports.LinkResult{Name: name, Path: linkPath}

		exists, err := s.links.Exists(linkPath)
		if err != nil {
			return report, fmt.Errorf("failed to check alias link %s: %w", linkPath, err)
		}

		outcome := ports.LinkCreated
		if exists {
			if !force {
				s.logger.Debug("alias link exists, skipping", "path", linkPath)
				result.Outcome = ports.LinkSkipped
				report.Links = append(report.Links, result)
				continue
			}
			if err := s.links.Remove(linkPath); err != nil {
				return report, fmt.Errorf("failed to remove alias link %s: %w", linkPath, err)
			}
			outcome = ports.LinkReplaced
		}

		s.logger.Debug("creating alias link", "path", linkPath, "target", binary)
		if err := s.links.Symlink(binary, linkPath); err != nil {
			return report, fmt.Errorf("failed to create alias link %s: %w", linkPath, err)
		}
		result.Outcome = outcome
		report.Links = append(report.Links, result)
	}

	return report, nil
}
