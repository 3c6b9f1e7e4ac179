// Command plancoverd serves the plan-coverage analysis API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/grantdozier/LCR-Area-Calculations-Module/server"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := server.LoadConfig()
	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}

	// Shutdown drains the worker queue, so in-flight jobs finish
	// before the process exits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	if err := srv.Listen(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
