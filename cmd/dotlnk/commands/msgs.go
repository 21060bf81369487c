package commands

// Short messages (one-liners)
const (
	MsgRootShort   = "Symlink your dotfiles into place, with backups"
	MsgLinkShort   = "Link manifest entries into place"
	MsgStatusShort = "Show the state of every manifest link"
	MsgInitShort   = "Write a starter manifest into the dotfiles root"

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot     = "Dotfiles root (default: $DOTLNK_DOTFILES_ROOT or ~/dotfiles)"
	MsgFlagManifest = "Manifest path (default: probe well-known locations)"
	MsgFlagBackup   = "Backup root for displaced files (default: manifest value or XDG state dir)"
	MsgFlagDryRun   = "Preview what would happen without touching anything"
	MsgFlagYes      = "Approve every displacement without prompting"
	MsgFlagNoInput  = "Decline every displacement without prompting"
	MsgFlagFormat   = "Output format: text or yaml"

	MsgDryRunNotice = "\nDRY RUN - no changes were made"
)

// Long messages
const (
	MsgRootLong = `dotlnk reads an ordered manifest of source/target pairs rooted in your
dotfiles tree and makes each target a symbolic link to its source.

Anything already occupying a target is moved into a single per-run,
timestamped backup directory before linking (after confirmation), so a run
never destroys existing configuration and is always safe to repeat.`

	MsgLinkLong = `Link applies every manifest entry in order. Existing correct links are
left alone; occupied targets are displaced into the run's backup directory
after confirmation. Failures affect only their own entry.

Exit status: 0 when nothing failed, 2 when any original was moved into the
backup directory but its link could not be created (the report names the
backup location), 1 for any other failure.`
)
