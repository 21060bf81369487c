package initialize

import (
	"path/filepath"

	"github.com/pviana/dotlnk/pkg/config"
	"github.com/pviana/dotlnk/pkg/logging"
	"github.com/pviana/dotlnk/pkg/paths"
)

// Options holds options for the init command
type Options struct {
	DotfilesRoot string
}

// Run writes a starter manifest into the dotfiles root and returns its
// path. Fails if a manifest already exists there.
func Run(opts Options) (string, error) {
	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return "", err
	}

	manifestPath := filepath.Join(p.DotfilesRoot(), paths.ManifestFileNames[0])
	if err := config.WriteManifest(manifestPath, config.Starter()); err != nil {
		return "", err
	}

	logger := logging.GetLogger("commands.initialize")
	logger.Info().
		Str("path", manifestPath).
		Msg("Starter manifest written")
	return manifestPath, nil
}
