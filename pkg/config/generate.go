package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/pviana/dotlnk/pkg/errors"
)

// Starter returns a starter manifest with commented-out-by-convention
// example links a user edits to match their dotfiles tree.
func Starter() *Config {
	return &Config{
		Links: []Link{
			{Source: "zsh/zshrc", Target: "~/.zshrc"},
			{Source: "git/gitconfig", Target: "~/.gitconfig"},
		},
	}
}

// WriteManifest serializes cfg as TOML at path. Refuses to overwrite an
// existing file; a manifest is user-owned once created.
func WriteManifest(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfigValid, "manifest already exists at %s", path)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize manifest")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write manifest %s", path)
	}
	return nil
}
