package server

import (
	"context"
	"net/http"
	"time"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// New はechoを組み立ててルートを登録する。
func New(
	userH *handler.UserHandler,
	itemH *handler.ItemHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	userH.RegisterRoutes(e)
	itemH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)

	return e
}

// Start はサーバーを起動し、ctxが終わったらgraceful shutdownする。
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return e.Shutdown(shutdownCtx)
	}
}

// リクエストをzerologで1行ずつ残す
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
