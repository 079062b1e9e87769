package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-seller-bootstrap/bootstrap"
	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	"github.com/jrsteele09/go-seller-bootstrap/internal/logging"
	"github.com/jrsteele09/go-seller-bootstrap/localstore"
	"github.com/jrsteele09/go-seller-bootstrap/platform"
	"github.com/jrsteele09/go-seller-bootstrap/server"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	logger := logging.New(logging.Config{Level: c.GetLogLevel(), Env: c.GetEnv()})
	logging.SetGlobal(logger)
	displayAppname(c.GetAppName())

	ctx := context.Background()
	app, err := platform.New(ctx, c, logging.Component(logger, "platform"))
	if err != nil {
		return fmt.Errorf("platform.New: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("Failed to close platform clients")
		}
	}()

	local, err := localstore.New(ctx, c)
	if err != nil {
		return fmt.Errorf("localstore.New: %w", err)
	}

	boot := bootstrap.New(app.Auth(), app.Documents(), local, c.GetAdminCredentials(), logging.Component(logger, "bootstrap"))
	boot.Run(ctx)

	var bucket string
	if app.Storage() != nil {
		bucket = app.Storage().Name()
	}
	handler := server.New(c, boot, app.Auth(), bucket, logging.Component(logger, "server"))
	httpServer := &http.Server{Addr: c.GetPort(), Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	serveErr := make(chan error, 1)
	go func() { serveErr <- listenAndServe(httpServer) }()

	select {
	case err := <-serveErr:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(httpServer)
}

func listenAndServe(server *http.Server) error {
	log.Info().Msgf("Server listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
