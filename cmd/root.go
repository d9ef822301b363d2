package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/omdb"
	"github.com/kasuboski/watchlist/pkg/tmdb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "watchlist cli",
	Long:  `track movies and series to watch, rate them and request them on the media server`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yaml if present)")
}

// legacyEnv maps the environment variables of existing deployments onto config keys
var legacyEnv = map[string]string{
	"tmdb.apiKey":          "TMDB_TOKEN",
	"omdb.apiKey":          "OMDB_API_KEY",
	"ombi.uri":             "OMBI_BASE_URL",
	"ombi.apiKey":          "OMBI_API_KEY",
	"ombi.requestOnBehalf": "REQUEST_ON_BEHALF",
	"storage.movieTable":   "DB_TABLE_NAME",
	"storage.seriesTable":  "DB_TABLE_NAME_SERIES",
}

func initConfig() {
	if cfgFile == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			cfgFile = "config.yaml"
		}
	}
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("WATCHLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	for key, env := range legacyEnv {
		viper.BindEnv(key, "WATCHLIST_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
	}

	viper.SetDefault("tmdb.uri", tmdb.DefaultURI)
	viper.SetDefault("tmdb.imageURI", tmdb.DefaultImageURI)
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.maxRetries", 1)
	viper.SetDefault("tmdb.backoff", time.Millisecond*500)

	viper.SetDefault("omdb.uri", omdb.DefaultURI)
	viper.SetDefault("omdb.apiKey", "")

	viper.SetDefault("ombi.uri", "")
	viper.SetDefault("ombi.apiKey", "")
	viper.SetDefault("ombi.requestOnBehalf", "")

	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.filePath", "watchlist.sqlite")
	viper.SetDefault("storage.dsn", "")
	viper.SetDefault("storage.movieTable", "movies")
	viper.SetDefault("storage.seriesTable", "series")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.sessionKey", "")

	viper.SetDefault("manager.availabilityConcurrency", 8)
	viper.SetDefault("manager.jobs.backdropRefresh", time.Duration(0))

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)
}

func initLogger() {
	logger.Init(logger.Options{
		Level: viper.GetString("log.level"),
		JSON:  viper.GetBool("log.json"),
	})
}
