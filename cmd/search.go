package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search movie|series <query>",
	Short: "search the catalog",
	Long:  `search the catalog and show which results are already on the watchlist`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

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

		results, err := m.SearchTitles(ctx, kind, strings.Join(args[1:], " "))
		if err != nil {
			log.Fatal("failed to search", zap.Error(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tYEAR\tADDED")
		for _, r := range results {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", r.ID, deref(r.Title.Title), deref(r.Year), r.Added)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
