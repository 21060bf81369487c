package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/pviana/dotlnk/pkg/errors"
	"github.com/pviana/dotlnk/pkg/logging"
	"github.com/pviana/dotlnk/pkg/types"
)

// Request asks for Target to become a symbolic link to Source. Both paths
// are absolute; Source is expected to exist (callers validate this when
// building requests from the manifest).
type Request struct {
	Source string
	Target string
}

// Outcome classifies what happened to a single request.
type Outcome string

const (
	// OutcomeLinked means the target did not exist and was linked
	OutcomeLinked Outcome = "linked"

	// OutcomeAlreadyLinked means the target was already a symlink to the
	// source and nothing was touched
	OutcomeAlreadyLinked Outcome = "already-linked"

	// OutcomeBackedUpAndLinked means pre-existing content was moved into
	// the backup directory and the link was created
	OutcomeBackedUpAndLinked Outcome = "backed-up-and-linked"

	// OutcomeSkippedByUser means the confirmer declined the displacement
	// and the target was left untouched
	OutcomeSkippedByUser Outcome = "skipped"

	// OutcomeFailed means the request failed; Result.Err carries the
	// coded reason
	OutcomeFailed Outcome = "failed"
)

// Result is the per-request outcome. Err is non-nil exactly when Outcome is
// OutcomeFailed. BackupPath is set whenever the original content was moved,
// including the partial-failure case where the subsequent link failed.
type Result struct {
	Request    Request
	Outcome    Outcome
	Err        error
	BackupPath string
}

// Session is the per-run backup directory. It is created lazily by the
// first displacement and reused for every later one in the same run.
type Session struct {
	Dir       string
	CreatedAt time.Time
}

// Manager applies link requests against a filesystem. It is single-use per
// run: the lazily created backup session sticks to the Manager, so reusing
// one across runs would funnel new displacements into an old session.
type Manager struct {
	fs          types.FS
	backupsRoot string
	logger      zerolog.Logger
	now         func() time.Time

	session *Session
}

// writableChecker is an optional FS capability. Filesystems that cannot
// answer (in-memory test doubles) are treated as fully writable.
type writableChecker interface {
	Writable(name string) bool
}

// New creates a Manager that places backup sessions under backupsRoot.
func New(fs types.FS, backupsRoot string) *Manager {
	return &Manager{
		fs:          fs,
		backupsRoot: backupsRoot,
		logger:      logging.GetLogger("linker"),
		now:         time.Now,
	}
}

// WithClock overrides the clock used to name backup sessions. Test hook.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Session returns the backup session created during this run, or nil if no
// displacement happened.
func (m *Manager) Session() *Session {
	return m.session
}

// Apply processes requests strictly in order and returns one Result per
// request. confirm is consulted before any displacement; a nil confirm
// declines everything.
func (m *Manager) Apply(requests []Request, confirm types.Confirmer) []Result {
	if confirm == nil {
		confirm = types.DeclineAll()
	}

	results := make([]Result, 0, len(requests))
	for _, req := range requests {
		res := m.applyOne(req, confirm)
		m.logResult(res)
		results = append(results, res)
	}
	return results
}

func (m *Manager) applyOne(req Request, confirm types.Confirmer) Result {
	res := Result{Request: req}

	parent := filepath.Dir(req.Target)
	if err := m.fs.MkdirAll(parent, 0755); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory %s", parent)
		return res
	}

	info, err := m.fs.Lstat(req.Target)
	switch {
	case os.IsNotExist(err):
		if err := m.fs.Symlink(req.Source, req.Target); err != nil {
			res.Outcome = OutcomeFailed
			res.Err = errors.Wrapf(err, errors.ErrLinkCreate, "cannot create symlink %s", req.Target)
			return res
		}
		res.Outcome = OutcomeLinked
		return res

	case err != nil:
		res.Outcome = OutcomeFailed
		if os.IsPermission(err) {
			res.Err = errors.Wrapf(err, errors.ErrPermission, "cannot inspect %s", req.Target)
		} else {
			res.Err = errors.Wrapf(err, errors.ErrInternal, "cannot inspect %s", req.Target)
		}
		return res
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := m.fs.Readlink(req.Target); err == nil &&
			filepath.Clean(target) == filepath.Clean(req.Source) {
			res.Outcome = OutcomeAlreadyLinked
			return res
		}
	}

	// Anything else occupies the target: a regular file, a directory, or
	// a symlink pointing elsewhere. Displace it, with consent.
	return m.displace(req, parent, confirm)
}

func (m *Manager) displace(req Request, parent string, confirm types.Confirmer) Result {
	res := Result{Request: req}

	if !m.writable(req.Target) || !m.writable(parent) {
		res.Outcome = OutcomeFailed
		res.Err = errors.Newf(errors.ErrPermission,
			"no write permission to displace %s", req.Target)
		return res
	}

	if !confirm.Confirm(req.Target) {
		res.Outcome = OutcomeSkippedByUser
		return res
	}

	if err := m.ensureSession(); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	backupPath := m.reserveBackupPath(filepath.Base(req.Target))
	if err := m.fs.Rename(req.Target, backupPath); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = errors.Wrapf(err, errors.ErrBackupMove,
			"cannot move %s into backup directory", req.Target)
		return res
	}
	res.BackupPath = backupPath

	if err := m.fs.Symlink(req.Source, req.Target); err != nil {
		// Partial failure: the original now lives in the backup
		// directory but the link is missing. Reported distinctly so
		// the caller can point the user at the displaced file.
		res.Outcome = OutcomeFailed
		res.Err = errors.Wrapf(err, errors.ErrLinkAfterBackup,
			"original moved to %s but symlink creation failed", backupPath).
			WithDetail("backupPath", backupPath)
		return res
	}

	res.Outcome = OutcomeBackedUpAndLinked
	return res
}

// ensureSession creates the per-run backup directory on first use. On
// failure the session stays unset so a later request may retry.
func (m *Manager) ensureSession() error {
	if m.session != nil {
		return nil
	}

	createdAt := m.now()
	dir := filepath.Join(m.backupsRoot, createdAt.Format("20060102-150405.000000000"))
	if err := m.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrBackupDirCreate,
			"cannot create backup directory %s", dir)
	}

	m.session = &Session{Dir: dir, CreatedAt: createdAt}
	m.logger.Info().Str("dir", dir).Msg("Created backup session")
	return nil
}

// reserveBackupPath returns a collision-free path inside the session for a
// displaced file with the given basename. Two displaced targets sharing a
// basename get numeric suffixes rather than overwriting each other.
func (m *Manager) reserveBackupPath(base string) string {
	candidate := filepath.Join(m.session.Dir, base)
	for i := 1; ; i++ {
		if _, err := m.fs.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = filepath.Join(m.session.Dir, fmt.Sprintf("%s.%d", base, i))
	}
}

func (m *Manager) writable(path string) bool {
	if checker, ok := m.fs.(writableChecker); ok {
		return checker.Writable(path)
	}
	return true
}

func (m *Manager) logResult(res Result) {
	switch res.Outcome {
	case OutcomeFailed:
		event := m.logger.Error().Err(res.Err)
		if errors.IsErrorCode(res.Err, errors.ErrLinkAfterBackup) {
			event = event.Str("backupPath", res.BackupPath)
		}
		event.Str("target", res.Request.Target).Msg("Link request failed")
	case OutcomeSkippedByUser:
		m.logger.Info().Str("target", res.Request.Target).Msg("Displacement declined, target untouched")
	default:
		m.logger.Debug().
			Str("target", res.Request.Target).
			Str("source", res.Request.Source).
			Str("outcome", string(res.Outcome)).
			Msg("Link request applied")
	}
}
