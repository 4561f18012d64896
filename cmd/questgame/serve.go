package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/questgame/internal/bootstrap"
	"github.com/osse101/questgame/internal/game"
	"github.com/osse101/questgame/internal/gitsync"
	"github.com/osse101/questgame/internal/notify"
	"github.com/osse101/questgame/internal/scheduler"
	"github.com/osse101/questgame/internal/server"
	"github.com/osse101/questgame/internal/sse"
	"github.com/osse101/questgame/internal/store"
	"github.com/osse101/questgame/internal/worker"
)

const (
	serveWorkers         = 2
	serveQueueSize       = 16
	serveShutdownTimeout = 10 * time.Second
)

func newServeCmd(opts *appOptions) *cobra.Command {
	var port int
	var openBrowser bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Abre viewer no browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logFile, err := bootstrap.SetupLogger(cfg)
			if err != nil {
				return err
			}
			defer logFile.Close()

			bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
			if err != nil {
				return err
			}
			hub := sse.NewHub()
			bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{EventBus: bus, SSEHub: hub})

			st := store.New(cfg.Home)
			svc := game.NewService(st,
				game.WithPublisher(publisher),
				game.WithGit(gitsync.NewCLI(cfg.Home)),
			)
			srv := server.NewServer(cfg.Addr(), cfg.Home, svc, st, hub)

			pool := worker.NewPool(serveWorkers, serveQueueSize)
			pool.Start()
			sched := scheduler.New(pool)
			if cfg.Notify.Enabled {
				job := notify.NewJob(st,
					notify.NewSession(notify.DefaultSessionSize, notify.DefaultSessionTTL),
					notify.OSAScript{},
					notify.ScheduleFromConfig(cfg.Notify),
					time.Now)
				sched.ScheduleAfter(cfg.Notify.InitialDelay, cfg.Notify.Interval, job)
			}
			rollover := worker.NewRolloverWorker(svc)
			rollover.Start()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			url := fmt.Sprintf("http://%s", cfg.Addr())
			fmt.Fprintf(cmd.OutOrStdout(), "\n  QuestGame rodando em %s\n  Ctrl+C para parar\n\n", url)
			if openBrowser {
				if err := exec.Command("open", url).Start(); err != nil {
					slog.Debug("Could not open browser", "error", err)
				}
			}

			var serveErr error
			select {
			case <-ctx.Done():
			case serveErr = <-errCh:
				slog.Error("Server failed", "error", serveErr)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
			defer cancel()
			bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
				Server:             srv,
				Scheduler:          sched,
				Pool:               pool,
				RolloverWorker:     rollover,
				ResilientPublisher: publisher,
			})
			return serveErr
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default $PORT or 8777)")
	cmd.Flags().BoolVar(&openBrowser, "open", true, "Open the UI in the browser")
	return cmd
}
