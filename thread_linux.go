//go:build linux

package funnel

import "golang.org/x/sys/unix"

// threadID returns the OS thread id of the calling goroutine's current thread
func threadID() int {
	return unix.Gettid()
}
