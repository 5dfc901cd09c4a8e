// Package service keeps the console's in-memory state slices and the
// operations that mutate them against the backend. Each slice is written
// only when its own operation resolves; the console runs these from a
// single goroutine, so the packages take no locks.
package service

// Notifier surfaces transient user-facing notices, the console analogue
// of toast popups. Failures are notified and recorded on the slice; they
// never escalate past the calling command.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notices.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
