package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/varuntyagi83/geo-tracker/internal/cache"
	"github.com/varuntyagi83/geo-tracker/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geo-tracker",
	Short: "Track brand visibility in LLM answers",
	Long: `geo-tracker measures how visible a brand is in the answers large
language models give to everyday consumer questions.

It asks a panel of questions across providers, detects where and how
the tracked brand and its competitors appear, and scores placement,
citation grounding and sentiment for every answer.

The questions never name the brand, so the numbers reflect organic
recommendations rather than prompt echo.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("geo-tracker v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.geo-tracker/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".geo-tracker"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match GEOTRACKER_*
	viper.SetEnvPrefix("GEOTRACKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overlaid
// with the config file viper located.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if path := viper.ConfigFileUsed(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// buildAnswerCache creates the layered answer cache, or nil when
// caching is disabled.
func buildAnswerCache(cfg *model.Config) *cache.AnswerCache {
	if !cfg.Cache.Enabled {
		return nil
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache disabled, no home directory: %v\n", err)
			return nil
		}
		dir = filepath.Join(home, ".geo-tracker", "cache")
	}

	store := cache.NewLayeredCache(cfg.Cache.TTL, dir, cfg.Cache.TTL)
	return cache.NewAnswerCache(store, cfg.Cache.TTL)
}
