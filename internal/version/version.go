package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/DmarshalTU/safecracker/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/DmarshalTU/safecracker/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/DmarshalTU/safecracker/internal/version.Date={{.Date}}
)
