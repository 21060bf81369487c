// Package linker ensures that each target path in an ordered set of link
// requests is a symbolic link to its source path.
//
// Pre-existing content that does not already match is displaced into a
// single per-run timestamped backup directory before linking, after the
// caller-supplied confirmer approves it. The backup directory is created
// lazily, at most once per run, and displaced files keep their basename
// (disambiguated with a numeric suffix on collision, never silently
// overwritten).
//
// Requests are processed strictly sequentially in input order and each one
// yields exactly one Result. Failures are local to their request: the batch
// is never aborted and nothing is rolled back. The one state that demands
// attention is ErrLinkAfterBackup, where the original was moved into the
// backup directory but the symlink could not be created; its Result carries
// the backup path so the displaced file can be recovered manually.
package linker
