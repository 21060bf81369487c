package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/pviana/dotlnk/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/pviana/dotlnk/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/pviana/dotlnk/internal/version.Date={{.Date}}
)
