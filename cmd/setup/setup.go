package setup

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/graceful"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/idgenerator"
	cMetrics "bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"
	"bitbucket.org/Amartha/go-emi-collection/internal/repositories"
	"bitbucket.org/Amartha/go-emi-collection/internal/services"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"golang.org/x/exp/slices"
)

type Setup struct {
	Config        config.Config
	NewRelic      *newrelic.Application
	Metrics       cMetrics.Metrics
	CollectionAPI repositories.CollectionAPI
	Service       *services.Services
}

// Init loads the configuration and wires every dependency. The returned
// stoppers must be run even when err is not nil.
func Init(command string, opts ...config.LoadOption) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(opts...)
	if err != nil {
		err = fmt.Errorf("failed to load config: %w", err)
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = xlog.InfoLogLevel()
	}
	if cfg.App.LogLevel != "" {
		logLevel = xlog.WithLogLevel(cfg.App.LogLevel)
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(1),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	xlog.Info(ctx, "[SETUP]",
		xlog.String("command", command),
		xlog.String("env", config.StringToEnvironment(cfg.App.Env).String()),
		xlog.String("collectionApi", cfg.CollectionAPI.BaseURL))

	setup.NewRelic = setupNR(ctx, cfg)
	if setup.NewRelic != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			setup.NewRelic.Shutdown(10 * time.Second)
			return nil
		})
	}

	setup.Metrics = cMetrics.New(cfg.App.Name)
	setup.CollectionAPI = repositories.NewCollectionAPI(cfg.CollectionAPI, setup.Metrics)
	setup.Service = services.New(cfg, setup.CollectionAPI, idgenerator.New(), setup.Metrics)

	return
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env != config.PROD_ENV || cfg.NewRelicLicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}

	if err = app.WaitForConnection(15 * time.Second); err != nil {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}

	return app
}
