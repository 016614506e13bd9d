// Package cli implements the memoir CLI commands.
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mleone/memoir/internal/config"
	"github.com/mleone/memoir/internal/store"
)

var (
	storeDirFlag string
	verboseFlag  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "memoir",
	Short: "Persistent memory for AI agents",
	Long:  "A tiny CLI for persistent agent memory. One JSONL log, TF-IDF search with time decay and importance weighting.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&storeDirFlag, "store", "s", "", "Store directory (default: nearest .memoir/)")
	RootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Debug logging")
}

// loadConfig resolves configuration and the store directory. The
// --store flag wins over config and discovery.
func loadConfig() (config.Config, string) {
	cwd, err := os.Getwd()
	if err != nil {
		exitErr("resolve working directory", err)
	}
	cfg, dir, err := config.Load(cwd)
	if err != nil {
		exitErr("load config", err)
	}
	if storeDirFlag != "" {
		dir = storeDirFlag
	}
	logger.Debug("resolved store", "dir", dir)
	return cfg, dir
}

func openStore() (*store.Store, config.Config) {
	cfg, dir := loadConfig()
	return store.New(dir), cfg
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func exitErr(msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
