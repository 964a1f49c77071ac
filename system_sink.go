// FILE: system_sink.go
package funnel

import (
	"errors"
)

// ErrSystemLogUnsupported is returned by NewSystemSink on platforms without syslog.
var ErrSystemLogUnsupported = errors.New("funnel: system log is not supported on this platform")

// DefaultSystemTag is the syslog tag used when none is given
const DefaultSystemTag = "funnel"
