package build

// Set via ldflags at release time.
var (
	Version = "v0.0.0-dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "source"
)
