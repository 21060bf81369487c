package config

import (
	"path/filepath"

	"github.com/pviana/dotlnk/pkg/errors"
	"github.com/pviana/dotlnk/pkg/linker"
	"github.com/pviana/dotlnk/pkg/paths"
	"github.com/pviana/dotlnk/pkg/types"
)

// Requests resolves the manifest's links into absolute link requests, in
// manifest order. Relative sources resolve against the dotfiles root and
// every source must exist; a missing source aborts resolution since it is
// a manifest defect rather than a per-run condition.
func (c *Config) Requests(p paths.Paths, fs types.FS) ([]linker.Request, error) {
	root := p.DotfilesRoot()
	if c.DotfilesRoot != "" {
		root = paths.ExpandHome(c.DotfilesRoot)
	}

	requests := make([]linker.Request, 0, len(c.Links))
	for i, link := range c.Links {
		source := paths.ExpandHome(link.Source)
		if !filepath.IsAbs(source) {
			source = filepath.Join(root, source)
		}
		source = filepath.Clean(source)

		if _, err := fs.Stat(source); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceMissing,
				"links[%d]: source %s does not exist", i, source)
		}

		target := filepath.Clean(paths.ExpandHome(link.Target))
		if !filepath.IsAbs(target) {
			return nil, errors.Newf(errors.ErrConfigValid,
				"links[%d]: target %s is not absolute", i, link.Target)
		}

		requests = append(requests, linker.Request{Source: source, Target: target})
	}
	return requests, nil
}

// ResolveBackupsRoot returns the manifest's backup root override, falling
// back to the XDG state location.
func (c *Config) ResolveBackupsRoot(p paths.Paths) string {
	if c.BackupsRoot != "" {
		return paths.ExpandHome(c.BackupsRoot)
	}
	return p.BackupsRoot()
}
