package types

// Confirmer decides whether an existing file at path may be displaced into
// the backup directory before linking. Implementations block until a
// decision is available (interactive prompt, or a scripted answer in tests
// and non-interactive runs).
type Confirmer interface {
	Confirm(path string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(path string) bool

// Confirm implements Confirmer
func (f ConfirmerFunc) Confirm(path string) bool {
	return f(path)
}

// ApproveAll returns a Confirmer that approves every displacement. Used by
// the --yes flag and by idempotence tests.
func ApproveAll() Confirmer {
	return ConfirmerFunc(func(string) bool { return true })
}

// DeclineAll returns a Confirmer that declines every displacement. Used by
// --no-input runs where stdin is not a terminal.
func DeclineAll() Confirmer {
	return ConfirmerFunc(func(string) bool { return false })
}
