package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add movie|series <id>",
	Short: "add a title to the watchlist",
	Long:  `look a catalog id up and add it to the watchlist, use search to find the id`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		kind, err := storage.ParseKind(args[0])
		if err != nil {
			log.Fatal("invalid kind", zap.Error(err))
		}

		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			log.Fatal("invalid id", zap.String("id", args[1]), zap.Error(err))
		}

		cfg, err := readConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal("failed to init database", zap.Error(err))
		}
		defer store.Close()

		m, err := newManager(cfg, store)
		if err != nil {
			log.Fatal("failed to create manager", zap.Error(err))
		}

		title, err := m.AddTitleByID(logger.WithCtx(ctx, log), kind, id)
		if errors.Is(err, storage.ErrAlreadyExists) {
			fmt.Printf("%d is already on the %s watchlist\n", id, kind)
			return
		}
		if err != nil {
			log.Fatal("failed to add title", zap.Error(err))
		}

		fmt.Printf("added %s %s (%s)\n", kind, deref(title.Title), deref(title.Year))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
