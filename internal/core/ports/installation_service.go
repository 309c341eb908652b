package ports

// LinkOutcome classifies what installation did with a single alias link.
type LinkOutcome int

const (
	LinkCreated LinkOutcome = iota
	LinkReplaced
	LinkSkipped
)

// LinkResult is the outcome of installing one alias link.
type LinkResult struct {
	Name    string
	Path    string
	Outcome LinkOutcome
}

/*
InstallReport summarizes an installation run for rendering by the CLI: where
the links went, which binary they point at, and what happened to each one.
*/
type InstallReport struct {
	BinDir        string
	BinDirCreated bool
	Binary        string
	Links         []LinkResult
}

/*
InstallationService defines an interface for creating the symlink farm that
lets aliases be invoked by name.
*/
type InstallationService interface {
	// Install creates one link per configured alias, pointing at the running
	// binary. Existing links are skipped unless force is set, in which case
	// they are replaced.
	Install(force bool) (InstallReport, error)
}
