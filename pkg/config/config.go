package config

import (
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pviana/dotlnk/pkg/errors"
	"github.com/pviana/dotlnk/pkg/paths"
)

// Link declares that Target should be a symlink to Source. Source is
// relative to the dotfiles root unless absolute; Target may use a leading
// tilde.
type Link struct {
	Source string `koanf:"source" toml:"source"`
	Target string `koanf:"target" toml:"target"`
}

// Config is the loaded manifest. Links keeps the manifest's declaration
// order; link requests are processed in this order.
type Config struct {
	DotfilesRoot string `koanf:"dotfiles_root" toml:"dotfiles_root,omitempty"`
	BackupsRoot  string `koanf:"backups_root" toml:"backups_root,omitempty"`
	Links        []Link `koanf:"links" toml:"links"`
}

// Validate checks a single link declaration.
func (l Link) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Source, validation.Required),
		validation.Field(&l.Target, validation.Required),
	)
}

// Validate checks the whole manifest: each link is well-formed and no two
// links declare the same target.
func (c *Config) Validate() error {
	seen := make(map[string]int, len(c.Links))
	for i, link := range c.Links {
		if err := link.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "links[%d]", i)
		}
		target := filepath.Clean(paths.ExpandHome(link.Target))
		if prev, dup := seen[target]; dup {
			return errors.Newf(errors.ErrConfigValid,
				"links[%d] and links[%d] declare the same target %s", prev, i, link.Target)
		}
		seen[target] = i
	}
	return nil
}
