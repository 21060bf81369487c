package link

import (
	"github.com/pviana/dotlnk/pkg/config"
	"github.com/pviana/dotlnk/pkg/errors"
	"github.com/pviana/dotlnk/pkg/filesystem"
	"github.com/pviana/dotlnk/pkg/linker"
	"github.com/pviana/dotlnk/pkg/logging"
	"github.com/pviana/dotlnk/pkg/paths"
	"github.com/pviana/dotlnk/pkg/types"
)

// Options holds options for the link command
type Options struct {
	DotfilesRoot string
	ManifestPath string // explicit manifest; empty means probe well-known locations
	BackupsRoot  string // override; empty means manifest value or XDG state dir
	DryRun       bool
	Confirmer    types.Confirmer
	FileSystem   types.FS // allow injecting a filesystem for testing
}

// Result carries the per-request outcomes of a run plus the backup session,
// when one was created.
type Result struct {
	Results []linker.Result
	Session *linker.Session
	DryRun  bool
}

// ExitCode maps the run to a process exit status: 0 when nothing failed,
// 2 when any request landed in the moved-but-not-linked state, 1 for any
// other failure.
func (r *Result) ExitCode() int {
	code := 0
	for _, res := range r.Results {
		if res.Outcome != linker.OutcomeFailed {
			continue
		}
		if errors.IsErrorCode(res.Err, errors.ErrLinkAfterBackup) {
			return 2
		}
		code = 1
	}
	return code
}

// Run loads the manifest, resolves its links into requests, and applies
// them in manifest order.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.link")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		logger.Warn().Str("root", p.DotfilesRoot()).Msg("No dotfiles root configured, using default")
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

	backupsRoot := opts.BackupsRoot
	if backupsRoot == "" {
		backupsRoot = cfg.ResolveBackupsRoot(p)
	}

	mgr := linker.New(fs, backupsRoot)

	if opts.DryRun {
		logger.Info().Int("requests", len(requests)).Msg("Dry run, planning only")
		return &Result{Results: mgr.Plan(requests), DryRun: true}, nil
	}

	logger.Info().
		Str("manifest", manifestPath).
		Int("requests", len(requests)).
		Str("backupsRoot", backupsRoot).
		Msg("Applying link requests")

	results := mgr.Apply(requests, opts.Confirmer)
	return &Result{Results: results, Session: mgr.Session()}, nil
}
