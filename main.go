package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/umalmyha/fraudwatch/internal/config"
	"github.com/umalmyha/fraudwatch/internal/infra"
)

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	app, err := infra.Router(cfg)
	if err != nil {
		logrus.Fatalf("failed to assemble application - %v", err)
	}

	start(app, cfg)
}

func start(app *echo.Echo, cfg config.Config) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.ServerCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ServerCfg.ShutdownSeconds)*time.Second)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
