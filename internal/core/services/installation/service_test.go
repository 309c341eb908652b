package installation

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dbradf/epithet/internal/core/domain/alias"
	"github.com/dbradf/epithet/internal/core/domain/execution"
	"github.com/dbradf/epithet/internal/core/ports"
	"github.com/dbradf/epithet/internal/core/testutil"
)

const (
	testBinDir = "/home/user/.local/epithet/bin"
	testBinary = "/usr/local/bin/epithet"
)

func testConfig() *alias.Config {
	return &alias.Config{
		Aliases: map[string]alias.Alias{
			"st": {Exec: execution.Command("git status")},
			"b":  {Exec: execution.Command("go build ./...")},
		},
	}
}

func newAccessor() *testutil.MockLinkAccessor {
	return &testutil.MockLinkAccessor{
		ExecutablePathFunc: func() (string, error) { return testBinary, nil },
		EnsureDirFunc:      func(dir string) (bool, error) { return false, nil },
		ExistsFunc:         func(path string) (bool, error) { return false, nil },
		RemoveFunc:         func(path string) error { return nil },
		SymlinkFunc:        func(target, link string) error { return nil },
	}
}

func TestNewService(t *testing.T) {
	svc := NewService(testConfig(), newAccessor(), testBinDir, nil)
	if svc == nil {
		t.Fatal("NewService() returned nil")
	}
}

func TestNewServiceNilDependencies(t *testing.T) {
	tests := []struct {
		name      string
		construct func()
	}{
		{"nil config", func() { NewService(nil, newAccessor(), testBinDir, nil) }},
		{"nil accessor", func() { NewService(testConfig(), nil, testBinDir, nil) }},
		{"empty bin dir", func() { NewService(testConfig(), newAccessor(), "", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewService did not panic")
				}
			}()
			tt.construct()
		})
	}
}

func TestServiceInstallFresh(t *testing.T) {
	var symlinked [][2]string
	accessor := newAccessor()
	accessor.EnsureDirFunc = func(dir string) (bool, error) {
		if dir != testBinDir {
			t.Errorf("EnsureDir(%q), want %q", dir, testBinDir)
		}
		return true, nil
	}
	accessor.SymlinkFunc = func(target, link string) error {
		symlinked = append(symlinked, [2]string{target, link})
		return nil
	}

	report, err := NewService(testConfig(), accessor, testBinDir, nil).Install(false)
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}

	if !report.BinDirCreated {
		t.Error("Install() BinDirCreated = false, want true")
	}
	if report.Binary != testBinary {
		t.Errorf("Install() binary = %q, want %q", report.Binary, testBinary)
	}

	wantLinks := []ports.LinkResult{
		{Name: "b", Path: filepath.Join(testBinDir, "b"), Outcome: ports.LinkCreated},
		{Name: "st", Path: filepath.Join(testBinDir, "st"), Outcome: ports.LinkCreated},
	}
	if !reflect.DeepEqual(report.Links, wantLinks) {
		t.Errorf("Install() links = %+v, want %+v", report.Links, wantLinks)
	}

	wantSymlinked := [][2]string{
		{testBinary, filepath.Join(testBinDir, "b")},
		{testBinary, filepath.Join(testBinDir, "st")},
	}
	if !reflect.DeepEqual(symlinked, wantSymlinked) {
		t.Errorf("Install() created %v, want %v", symlinked, wantSymlinked)
	}
}

func TestServiceInstallSkipsExisting(t *testing.T) {
	accessor := newAccessor()
	accessor.ExistsFunc = func(path string) (bool, error) {
		return filepath.Base(path) == "st", nil
	}
	accessor.RemoveFunc = func(path string) error {
		t.Errorf("Remove(%q) called without force", path)
		return nil
	}
	accessor.SymlinkFunc = func(target, link string) error {
		if filepath.Base(link) == "st" {
			t.Errorf("Symlink(%q) recreated an existing link without force", link)
		}
		return nil
	}

	report, err := NewService(testConfig(), accessor, testBinDir, nil).Install(false)
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}

	wantLinks := []ports.LinkResult{
		{Name: "b", Path: filepath.Join(testBinDir, "b"), Outcome: ports.LinkCreated},
		{Name: "st", Path: filepath.Join(testBinDir, "st"), Outcome: ports.LinkSkipped},
	}
	if !reflect.DeepEqual(report.Links, wantLinks) {
		t.Errorf("Install() links = %+v, want %+v", report.Links, wantLinks)
	}
}

func TestServiceInstallForceReplaces(t *testing.T) {
	var removed []string
	accessor := newAccessor()
	accessor.ExistsFunc = func(path string) (bool, error) { return true, nil }
	accessor.RemoveFunc = func(path string) error {
		removed = append(removed, filepath.Base(path))
		return nil
	}

	report, err := NewService(testConfig(), accessor, testBinDir, nil).Install(true)
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}

	wantRemoved := []string{"b", "st"}
	if !reflect.DeepEqual(removed, wantRemoved) {
		t.Errorf("Install() removed %v, want %v", removed, wantRemoved)
	}
	for _, link := range report.Links {
		if link.Outcome != ports.LinkReplaced {
			t.Errorf("Install() link %s outcome = %v, want LinkReplaced", link.Name, link.Outcome)
		}
	}
}

func TestServiceInstallErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(accessor *testutil.MockLinkAccessor)
	}{
		{
			name: "executable path lookup fails",
			setup: func(accessor *testutil.MockLinkAccessor) {
				accessor.ExecutablePathFunc = func() (string, error) {
					return "", errors.New("procfs unavailable")
				}
			},
		},
		{
			name: "bin directory creation fails",
			setup: func(accessor *testutil.MockLinkAccessor) {
				accessor.EnsureDirFunc = func(dir string) (bool, error) {
					return false, errors.New("permission denied")
				}
			},
		},
		{
			name: "symlink creation fails",
			setup: func(accessor *testutil.MockLinkAccessor) {
				accessor.SymlinkFunc = func(target, link string) error {
					return errors.New("read-only filesystem")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessor := newAccessor()
			tt.setup(accessor)

			if _, err := NewService(testConfig(), accessor, testBinDir, nil).Install(false); err == nil {
				t.Error("Install() error = nil, want an error")
			}
		})
	}
}

func TestServiceInstallEmptyConfig(t *testing.T) {
	cfg := &alias.Config{Aliases: map[string]alias.Alias{}}

	report, err := NewService(cfg, newAccessor(), testBinDir, nil).Install(false)
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}
	if len(report.Links) != 0 {
		t.Errorf("Install() links = %+v, want none", report.Links)
	}
}
