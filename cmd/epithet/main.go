package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dbradf/epithet/internal/adapters/osprocess"
	"github.com/dbradf/epithet/internal/core/services/aliasexecution"
	"github.com/dbradf/epithet/internal/core/services/aliasresolution"
	"github.com/dbradf/epithet/internal/core/services/installation"
	"github.com/dbradf/epithet/internal/core/services/substitution"
	"github.com/dbradf/epithet/internal/core/services/tokenization"
	"github.com/dbradf/epithet/internal/handlers/cli"
	"github.com/dbradf/epithet/internal/handlers/ui"
	"github.com/dbradf/epithet/internal/repositories/configfile"
	"github.com/dbradf/epithet/internal/repositories/symlinks"
)

// binaryName is the basename the primary CLI runs under. Any other
// invocation name is an installed symlink and is treated as an alias.
const binaryName = "epithet"

// envDebug enables debug logging. Symlink invocations cannot carry tool
// flags of their own, so the switch has to live in the environment.
const envDebug = "EPITHET_DEBUG"

// Version is set at build time
var Version = "dev"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: binaryName})
	if os.Getenv(envDebug) != "" {
		logger.SetLevel(log.DebugLevel)
	}

	configPath := configfile.DefaultPath()
	configSource, err := configfile.NewFileSource(configPath)
	if err != nil {
		exitWith(err)
	}
	config, err := configSource.Load()
	if err != nil {
		exitWith(err)
	}
	logger.Debug("configuration loaded", "path", configPath, "aliases", len(config.Aliases))

	resolver := aliasresolution.NewService(config)
	engine := substitution.NewEngine(tokenization.NewTokenizer())
	executionSvc := aliasexecution.NewService(resolver, engine, osprocess.NewOSProcessRunner(), logger)

	invokedAs := filepath.Base(os.Args[0])
	if invokedAs != binaryName {
		// Installed symlink: argv[0] names the alias, the rest is payload.
		logger.Debug("symlink invocation", "alias", invokedAs)
		exitWith(cli.RunAlias(executionSvc, invokedAs, os.Args[1:]))
	}

	binDir, err := symlinks.DefaultBinDir()
	if err != nil {
		exitWith(err)
	}
	installationSvc := installation.NewService(config, symlinks.NewAccessor(), binDir, logger)

	rootCmd := cli.NewRootCommand(Version, config, resolver, executionSvc, installationSvc, logger)
	exitWith(rootCmd.Execute())
}

// exitWith is the single exit point of the program. It translates err into
// the process exit code, printing a diagnostic for everything except a child
// process's own non-zero exit, which the child already reported.
func exitWith(err error) {
	if err == nil {
		os.Exit(0)
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", exitErr.Err)))
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}
