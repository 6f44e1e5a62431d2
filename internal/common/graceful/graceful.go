package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"

	"golang.org/x/exp/slices"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p != nil {
			go func(_p func() error) {
				if err := _p(); err != nil {
					xlog.Errorf(context.Background(), "[GRACEFUL] process exited: %v", err)
				}
			}(p)
		}
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 and then
// runs the stoppers.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sigusr1 := make(chan os.Signal, 1)
	signal.Notify(sigusr1, syscall.SIGUSR1)

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sigterm:
		xlog.Infof(context.Background(), "[GRACEFUL] received %s", s)
		StopProcess(duration, ps...)
	case s := <-sigusr1:
		xlog.Infof(context.Background(), "[GRACEFUL] received %s", s)
		StopProcess(duration, ps...)
	}
}

// StopProcess runs the stoppers last-registered first, each bounded by
// duration. Failures are logged and do not stop the remaining stoppers.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	ps = slices.Clone(ps)
	slices.Reverse(ps)

	for _, p := range ps {
		func() {
			if p == nil {
				return
			}
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			if err := p(ctx); err != nil {
				xlog.Warnf(ctx, "[GRACEFUL] stopper failed: %v", err)
			}
		}()
	}
}
