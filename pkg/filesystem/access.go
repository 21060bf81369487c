//go:build !windows

package filesystem

import "golang.org/x/sys/unix"

// Writable reports whether the current process may write to name. Uses
// access(2) so setuid edge cases follow the real uid, which matches what a
// subsequent rename or unlink would be allowed to do.
func (o *osFS) Writable(name string) bool {
	return unix.Access(name, unix.W_OK) == nil
}
