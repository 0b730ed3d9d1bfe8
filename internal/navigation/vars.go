package navigation

var (
	// Debug enables verbose navigator tracing via DebugLog and DebugLogOnce.
	// Set at runtime (e.g. by cmd/navigate's --verbose flag) rather than a build tag,
	// so a caller can turn it on for one run without recompiling.
	Debug = false
)
