package linker

import (
	"os"
	"path/filepath"
)

// State is the read-only classification of a link target, used by status
// reporting and dry runs. It mirrors the branches Apply takes without
// mutating anything.
type State string

const (
	// StateUnlinked means the target does not exist; Apply would link it
	StateUnlinked State = "unlinked"

	// StateLinked means the target is already a symlink to the source
	StateLinked State = "linked"

	// StateConflict means something else occupies the target; Apply
	// would require a displacement
	StateConflict State = "conflict"
)

// Classified pairs a request with its current state.
type Classified struct {
	Request Request
	State   State
}

// ClassifyAll classifies every request in order without mutating anything.
func (m *Manager) ClassifyAll(requests []Request) []Classified {
	classified := make([]Classified, 0, len(requests))
	for _, req := range requests {
		classified = append(classified, Classified{Request: req, State: m.Classify(req)})
	}
	return classified
}

// Plan reports what Apply would do if every displacement were approved,
// without touching the filesystem. Used by dry runs.
func (m *Manager) Plan(requests []Request) []Result {
	results := make([]Result, 0, len(requests))
	for _, req := range requests {
		res := Result{Request: req}
		switch m.Classify(req) {
		case StateUnlinked:
			res.Outcome = OutcomeLinked
		case StateLinked:
			res.Outcome = OutcomeAlreadyLinked
		case StateConflict:
			res.Outcome = OutcomeBackedUpAndLinked
		}
		results = append(results, res)
	}
	return results
}

// Classify inspects a request's target without touching it.
func (m *Manager) Classify(req Request) State {
	info, err := m.fs.Lstat(req.Target)
	if os.IsNotExist(err) {
		return StateUnlinked
	}
	if err == nil && info.Mode()&os.ModeSymlink != 0 {
		if target, err := m.fs.Readlink(req.Target); err == nil &&
			filepath.Clean(target) == filepath.Clean(req.Source) {
			return StateLinked
		}
	}
	return StateConflict
}
