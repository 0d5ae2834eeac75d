package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/skillshell/internal/common"
	"github.com/dtnitsch/skillshell/pkg/pages"
	"github.com/dtnitsch/skillshell/pkg/server"
)

const shutdownTimeout = 10 * time.Second

func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	pagesDir := common.StringFlagOr(c, "pages", cfg.PagesDir)
	list, err := pages.Load(pagesDir)
	if err != nil {
		return err
	}

	addr := common.StringFlagOr(c, "listen", cfg.Listen)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(cfg.SiteMetadata(), list, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving pages", "addr", addr, "pages", len(list), "pages_dir", pagesDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
