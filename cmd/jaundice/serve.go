package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	jaundicechi "github.com/fwojciec/jaundice/chi"
)

// shutdownTimeout bounds how long in-flight requests get to finish
// after an interrupt.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := deps.Config.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	handler := jaundicechi.NewServer(
		deps.Analyzer,
		deps.Logger,
		jaundicechi.WithMaxURLs(deps.Config.MaxURLs),
	)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "listening on %s\n", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
