package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"garden/config"
	"garden/internal/delivery"
	"garden/internal/delivery/middleware"
	"garden/internal/delivery/worker/handler"
	"garden/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type auditWorker struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the audit worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the push endpoint that receives AccountProvisioned events.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.PushHandler)

	srv := &auditWorker{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho registers the worker routes. Exposed for handler-level tests.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *auditWorker) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting audit worker", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *auditWorker) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down audit worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
