package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a memory",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	id := args[0]

	s, _ := openStore()
	removed, err := s.Delete(id)
	if err != nil {
		exitErr("rm", err)
	}

	if !removed {
		fmt.Printf(`{"ok":false,"id":%q,"reason":"not found"}`+"\n", id)
		return
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", id)
}
