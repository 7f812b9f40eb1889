package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context cancelled on the usual shutdown
// signals.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
}
