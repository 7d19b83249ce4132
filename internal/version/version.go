package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/evanmartell/shortstage/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/evanmartell/shortstage/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/evanmartell/shortstage/internal/version.Date={{.Date}}
)
