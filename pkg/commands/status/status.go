package status

import (
	"github.com/pviana/dotlnk/pkg/config"
	"github.com/pviana/dotlnk/pkg/filesystem"
	"github.com/pviana/dotlnk/pkg/linker"
	"github.com/pviana/dotlnk/pkg/logging"
	"github.com/pviana/dotlnk/pkg/paths"
	"github.com/pviana/dotlnk/pkg/types"
)

// Options holds options for the status command
type Options struct {
	DotfilesRoot string
	ManifestPath string
	FileSystem   types.FS
}

// Run classifies every manifest link read-only, in manifest order. Nothing
// on the filesystem is mutated.
func Run(opts Options) ([]linker.Classified, error) {
	logger := logging.GetLogger("commands.status")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}

	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath, err = config.Locate(p)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	requests, err := cfg.Requests(p, fs)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("manifest", manifestPath).Int("links", len(requests)).Msg("Classifying links")
	return linker.New(fs, cfg.ResolveBackupsRoot(p)).ClassifyAll(requests), nil
}
