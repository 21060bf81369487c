package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pviana/dotlnk/pkg/errors"
	"github.com/pviana/dotlnk/pkg/logging"
	"github.com/pviana/dotlnk/pkg/paths"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// DOTLNK_BACKUPS_ROOT overrides backups_root.
const EnvPrefix = "DOTLNK_"

// Load reads the manifest at path and layers defaults, file values, and
// environment overrides, in that order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dotfiles_root": "",
		"backups_root":  "",
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse manifest %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode manifest %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", path).
		Int("links", len(cfg.Links)).
		Msg("Manifest loaded")
	return &cfg, nil
}

// Locate probes the well-known manifest locations in order and returns the
// first that exists.
func Locate(p paths.Paths) (string, error) {
	for _, candidate := range p.ManifestCandidates() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrManifestNotFound,
		"no manifest found; looked for %s under %s and %s",
		strings.Join(paths.ManifestFileNames, ", "), p.DotfilesRoot(), p.ConfigDir())
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse,
			"unsupported manifest format %q (want .toml or .yaml)", filepath.Ext(path))
	}
}
