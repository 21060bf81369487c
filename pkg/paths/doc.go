// Package paths provides centralized path handling for dotlnk. It resolves
// the dotfiles root, the manifest location, and the XDG-compliant state
// directories that hold backups and logs, so that no other package computes
// well-known paths on its own.
package paths
