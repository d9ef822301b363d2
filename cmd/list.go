package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listOptions = view.DefaultOptions()

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list movie|series",
	Short: "list the watchlist",
	Long:  `list the watchlist`,
	Args:  cobra.ExactArgs(1),
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

		titles, err := store.ListTitles(ctx, kind)
		if err != nil {
			log.Fatal("failed to list titles", zap.Error(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tYEAR\tWATCHED\tRATING\tCRITIC")
		for _, t := range view.Apply(titles, listOptions.Normalize()) {
			rating := ""
			if t.Rating != nil {
				rating = fmt.Sprint(*t.Rating)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\t%s\n", t.ID, deref(t.Title), deref(t.Year), t.Watched, rating, deref(t.Critic))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar((*string)(&listOptions.Sort), "sort", string(listOptions.Sort), "sort by title, year, rating or critic")
	listCmd.Flags().StringVar((*string)(&listOptions.Order), "order", string(listOptions.Order), "asc or desc")
	listCmd.Flags().StringVar((*string)(&listOptions.Filter), "filter", string(listOptions.Filter), "all, watched or unwatched")
}
