package version

// Version information populated by the build process
var (
	Version    = "1.0"
	CommitHash = "unknown"
	BuildTime  = "unknown"
	BinaryName = "mcp-server-ihealth"
)

// Info returns formatted version information
func Info() string {
	return BinaryName + " " + Version + " (commit: " + CommitHash + ", built: " + BuildTime + ")"
}
