package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backdropsCmd represents the backdrops command
var backdropsCmd = &cobra.Command{
	Use:   "backdrops movie|series",
	Short: "fill in missing backdrops",
	Long:  `look up a backdrop for every title on the watchlist that does not have one`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		kind, err := storage.ParseKind(args[0])
		if err != nil {
			log.Fatal("invalid kind", zap.Error(err))
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

		res, err := m.RefreshBackdrops(ctx, kind)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tBACKDROP")
		for _, u := range res.Updated {
			fmt.Fprintf(w, "%s\t%s\n", deref(u.Title), u.Backdrop)
		}
		w.Flush()

		if err != nil {
			log.Fatal("failed to refresh backdrops", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(backdropsCmd)
}
