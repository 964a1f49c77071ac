// Package funnel is a process-wide logging funnel.
//
// Application code emits leveled messages with optional structured data and
// the Logger fans every message out, synchronously and in registration order,
// to its registered sinks. A fatal-level message additionally flushes every
// sink and terminates the process; the Logger's write lock is taken for that
// and never released.
//
// Basic usage:
//
//	logger, err := funnel.NewBuilder().
//	    ConsoleLevelString("info").
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//	funnel.SetShared(logger)
//
//	funnel.Info("server started", funnel.Fields{"port": 8080})
package funnel
