package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"garden/config"
	"garden/internal/delivery"
	httpmiddleware "garden/internal/delivery/http/middleware"
	"garden/internal/delivery/http/router"
	"garden/internal/delivery/http/validator"
	"garden/internal/delivery/middleware"
	"garden/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewEcho builds the API echo instance with its middleware chain and routes.
func NewEcho(params HTTPParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	e.Use(echomiddleware.Recover())
	e.Use(httpmiddleware.NewCORS(params.Config.HTTP.CORS))
	e.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Config).Handle)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	e := NewEcho(params)

	timeouts := params.Config.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
