package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/graceful"
	commonhttp "bitbucket.org/Amartha/go-emi-collection/internal/common/http"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/http/middleware"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog/ctxdata"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"
	"bitbucket.org/Amartha/go-emi-collection/internal/deliveries/http/health"
	"bitbucket.org/Amartha/go-emi-collection/internal/services"

	v1directory "bitbucket.org/Amartha/go-emi-collection/internal/deliveries/http/v1/directory"
	v1payment "bitbucket.org/Amartha/go-emi-collection/internal/deliveries/http/v1/payment"
	v1session "bitbucket.org/Amartha/go-emi-collection/internal/deliveries/http/v1/session"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		xlog.Infof(context.Background(), "[STARTUP] HTTP server listening on %s", s.addr)

		err := s.e.Start(s.addr)
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			xlog.Errorf(context.Background(), "[STARTUP] HTTP server error: %v", err)
			return err
		}

		return nil
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func (s *svc) GracefulTimeout() time.Duration {
	return s.gracefulTimeout
}

func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// NewHTTPServer builds the bridge between a web-view presentation layer and
// the collection controller. nr and mtc may be nil.
func NewHTTPServer(
	conf config.Config,
	nr *newrelic.Application,
	controller services.Controller,
	mtc metrics.Metrics,
) *svc {
	app := echo.New()
	app.HideBanner = true
	app.HidePort = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(m.Context())
	app.Use(m.Logger())
	if conf.App.HTTPTimeout > 0 {
		app.Use(echomiddleware.ContextTimeout(conf.App.HTTPTimeout))
	}

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// Endpoint debug/pprof/
	if config.StringToEnvironment(conf.App.Env).DebugEnabled() {
		pprof.Register(app)
	}

	// prometheus metrics
	registerer, gatherer := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	if mtc != nil {
		registerer = mtc.PrometheusRegisterer()
		if g, ok := registerer.(prometheus.Gatherer); ok {
			gatherer = g
		}
	}
	app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metrics.FlattenName(conf.App.Name),
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	app.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))

	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	v1Group := apiGroup.Group("/v1")
	v1directory.New(v1Group, controller)
	v1payment.New(v1Group, controller)
	v1session.New(v1Group, controller)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
