package main

import (
	"context"
	"sync"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/cmd/setup"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/graceful"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(s.Config, s.NewRelic, s.Service.Controller, s.Metrics)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, func(ctx context.Context) error {
		s.Service.Controller.Teardown()
		return nil
	})
	stoppers = append(stoppers, httpServer.Stop())

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	xlog.Info(ctx, "http server stopped!")
}
