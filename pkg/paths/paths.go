package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/pviana/dotlnk/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for the
	// dotfiles location
	EnvDotfilesRoot = "DOTLNK_DOTFILES_ROOT"

	// EnvStateDir overrides the XDG state directory for dotlnk
	EnvStateDir = "DOTLNK_STATE_DIR"

	// EnvConfigDir overrides the XDG config directory for dotlnk
	EnvConfigDir = "DOTLNK_CONFIG_DIR"
)

// Well-known names. These define dotlnk's on-disk layout and are not
// user-configurable.
const (
	// DefaultDotfilesDir is the default directory name for dotfiles,
	// relative to the user's home
	DefaultDotfilesDir = "dotfiles"

	// AppDirName is the directory name for dotlnk-specific files
	AppDirName = "dotlnk"

	// BackupsDirName is the subdirectory of the state dir that collects
	// per-run backup sessions
	BackupsDirName = "backups"
)

// ManifestFileNames lists the manifest filenames searched for, in priority
// order, first in the dotfiles root and then in the config dir.
var ManifestFileNames = []string{"dotlnk.toml", ".dotlnk.toml", "dotlnk.yaml", "dotlnk.yml"}

// Paths provides centralized path management for dotlnk
type Paths interface {
	// DotfilesRoot is the root of the managed dotfiles tree
	DotfilesRoot() string

	// UsedFallback reports whether the root came from the home-directory
	// fallback rather than an explicit flag or environment variable
	UsedFallback() bool

	// ConfigDir is the dotlnk config directory
	ConfigDir() string

	// StateDir is the dotlnk state directory
	StateDir() string

	// BackupsRoot is the directory under which per-run backup sessions
	// are created
	BackupsRoot() string

	// ManifestCandidates returns the manifest paths to probe, in order
	ManifestCandidates() []string

	// InDotfiles reports whether path lies inside the dotfiles root
	InDotfiles(path string) bool
}

type paths struct {
	dotfilesRoot string
	configDir    string
	stateDir     string
	usedFallback bool
}

// New creates a Paths instance. If dotfilesRoot is empty it is resolved
// from DOTLNK_DOTFILES_ROOT, falling back to ~/dotfiles.
func New(dotfilesRoot string) (Paths, error) {
	p := &paths{}

	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = ExpandHome(dotfilesRoot)
	}

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = ExpandHome(configDir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.stateDir = ExpandHome(stateDir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
}

// findDotfilesRoot resolves the dotfiles root from the environment, falling
// back to ~/dotfiles. The boolean reports whether the fallback was used so
// callers can warn about implicit behavior.
func findDotfilesRoot() (string, bool, error) {
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
	}
	return filepath.Join(home, DefaultDotfilesDir), true, nil
}

func (p *paths) DotfilesRoot() string { return p.dotfilesRoot }
func (p *paths) UsedFallback() bool   { return p.usedFallback }
func (p *paths) ConfigDir() string    { return p.configDir }
func (p *paths) StateDir() string     { return p.stateDir }

func (p *paths) BackupsRoot() string {
	return filepath.Join(p.stateDir, BackupsDirName)
}

func (p *paths) ManifestCandidates() []string {
	var candidates []string
	for _, name := range ManifestFileNames {
		candidates = append(candidates, filepath.Join(p.dotfilesRoot, name))
	}
	for _, name := range ManifestFileNames {
		candidates = append(candidates, filepath.Join(p.configDir, name))
	}
	return candidates
}

func (p *paths) InDotfiles(path string) bool {
	rel, err := filepath.Rel(p.dotfilesRoot, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ExpandHome expands a leading ~ or ~/ in path to the user's home directory.
// Paths without a tilde prefix are returned unchanged.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
