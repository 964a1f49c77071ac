// FILE: constant.go
package funnel

// Level constants, ordered Debug < Info < Warning < Error < Fatal
const (
	LevelDebug   Level = -4
	LevelInfo    Level = 0
	LevelWarning Level = 4
	LevelError   Level = 8
	LevelFatal   Level = 12
)

// FatalExitCode is the process exit status used by the default fatal handler
const FatalExitCode = 2

// Diagnostics
const (
	// Prefix for library errors and internal diagnostics
	errorPrefix = "funnel: "
	// Message of the synthetic entry emitted by Throttle after drops
	droppedMessage = "entries were dropped"
	// Data key carrying the drop count
	droppedCountKey = "dropped_count"
)

// Console targets
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
)
