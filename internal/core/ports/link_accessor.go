package ports

/*
LinkAccessor defines an interface for the filesystem operations the
installation service needs to maintain the alias link directory.
*/
type LinkAccessor interface {
	// ExecutablePath returns the canonicalized path of the running binary.
	ExecutablePath() (string, error)
	// EnsureDir creates dir and any missing parents, reporting whether it
	// had to be created.
	EnsureDir(dir string) (bool, error)
	// Exists reports whether path exists. A symlink at path counts as
	// existing even when its target is gone.
	Exists(path string) (bool, error)
	Remove(path string) error
	Symlink(target, link string) error
}
