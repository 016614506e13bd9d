package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all memories",
		Run:   runClear,
	}

	cmd.Flags().Bool("force", false, "Required; clearing is irreversible")

	RootCmd.AddCommand(cmd)
}

func runClear(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		exitErr("clear", fmt.Errorf("refusing to clear the store without --force"))
	}

	s, _ := openStore()
	n, err := s.Count()
	if err != nil {
		exitErr("clear", err)
	}
	if err := s.Clear(); err != nil {
		exitErr("clear", err)
	}

	fmt.Printf(`{"ok":true,"cleared":%d}`+"\n", n)
}
