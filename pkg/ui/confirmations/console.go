// Package confirmations provides the interactive confirmer used before a
// pre-existing file is displaced into the backup directory.
package confirmations

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/pviana/dotlnk/pkg/logging"
	"github.com/pviana/dotlnk/pkg/types"
)

// ConsoleConfirmer prompts on the terminal for each displacement. When
// stdin is not a terminal it declines everything rather than blocking, so
// piped and scripted runs never hang waiting for input.
type ConsoleConfirmer struct{}

// NewConsole creates a terminal-backed confirmer
func NewConsole() *ConsoleConfirmer {
	return &ConsoleConfirmer{}
}

// Confirm implements types.Confirmer
func (c *ConsoleConfirmer) Confirm(path string) bool {
	logger := logging.GetLogger("ui.confirmations")

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		logger.Warn().Str("path", path).
			Msg("stdin is not a terminal, declining displacement (use --yes to approve in scripts)")
		return false
	}

	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(path + " exists and is not the expected link. Move it to the backup directory and link?")
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Confirmation prompt failed, declining")
		return false
	}
	return ok
}

var _ types.Confirmer = (*ConsoleConfirmer)(nil)
