// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-subedict"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve annotations over HTTP",
		Description: "Endpoints:\n" +
			"  POST /api/annotate  body: {\"text\":\"...\",\"names\":false,\"html\":false}\n" +
			"  GET  /api/lookup?key=<key>[&names=true]\n" +
			"  GET  /api/stats\n" +
			"  GET  /healthz",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen on `ADDR`",
			},
			&cli.IntFlag{
				Name:  "cache-size",
				Usage: "cache up to `N` annotation results",
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			return e.serve(c.Context)
		},
	}
}

// serve runs the HTTP server until ctx is done or the process receives an
// interrupt signal.
func (e *env) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := subedict.NewReloader(ctx, e.open, e.cfg.Server.CacheSize)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         e.cfg.Server.Addr,
		Handler:      newHandler(r, e.logger, e.cfg),
		ReadTimeout:  e.cfg.Server.ReadTimeout,
		WriteTimeout: e.cfg.Server.WriteTimeout,
		IdleTimeout:  e.cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		e.logger.Info("listening", slog.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	hup := make(chan os.Signal, 1)
	if sigs := reloadSignals(); len(sigs) > 0 {
		signal.Notify(hup, sigs...)
		defer signal.Stop(hup)
	}

	for {
		select {
		case <-hup:
			if err := r.Reload(ctx); err != nil {
				e.logger.Error("reload failed", slog.Any("error", err))
				continue
			}
			e.logger.Info("reloaded dictionaries")
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("%w: server: %w", ErrSubedict, err)
		case <-ctx.Done():
			e.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("%w: shutdown: %w", ErrSubedict, err)
			}
			return nil
		}
	}
}
