// Package config loads the dotlnk manifest: the ordered list of
// source/target link declarations plus the few settings that govern where
// backups and dotfiles live. Configuration is layered with koanf: built-in
// defaults, then the manifest file (TOML or YAML, chosen by extension),
// then DOTLNK_* environment overrides.
package config
