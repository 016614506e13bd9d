package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mleone/memoir/internal/config"
	"github.com/mleone/memoir/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a memoir store in the current directory",
		Run:   runInit,
	}

	RootCmd.AddCommand(cmd)
}

func runInit(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		exitErr("resolve working directory", err)
	}
	dir := storeDirFlag
	if dir == "" {
		dir = filepath.Join(cwd, config.StoreDirName)
	}

	if err := store.New(dir).Init(); err != nil {
		exitErr("init", err)
	}
	if err := config.WriteDefault(dir); err != nil {
		exitErr("write config", err)
	}

	fmt.Printf("Initialized memoir store in %s\n", dir)
}
