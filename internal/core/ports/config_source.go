package ports

import "github.com/dbradf/epithet/internal/core/domain/alias"

/*
ConfigSource defines an interface for loading the alias configuration from
its backing store.
*/
type ConfigSource interface {
	Load() (*alias.Config, error)
}
