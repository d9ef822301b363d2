package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/securecookie"
	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/manager"
	"github.com/kasuboski/watchlist/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the watchlist server",
	Long:  `start the watchlist server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := readConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		store, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal("failed to init database", zap.Error(err))
		}
		defer store.Close()

		m, err := newManager(cfg, store)
		if err != nil {
			log.Fatal("failed to create manager", zap.Error(err))
		}

		sessionKey := []byte(cfg.Server.SessionKey)
		if len(sessionKey) == 0 {
			log.Warn("no session key configured, display preferences reset on restart")
			sessionKey = securecookie.GenerateRandomKey(32)
		}

		srv := server.New(log, m, server.NewSessionStore(sessionKey))
		scheduler := manager.NewScheduler(m, cfg.Manager)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
		g.Go(func() error {
			return srv.Serve(gctx, cfg.Server.Port)
		})

		if err := g.Wait(); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
