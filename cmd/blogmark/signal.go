package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled on the first shutdown signal so
// in-flight posts stop at their next checkpoint. Call stop() to release
// resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
