package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tag <id>",
		Short: "Add or remove tags on a memory",
		Args:  cobra.ExactArgs(1),
		Run:   runTag,
	}

	cmd.Flags().StringP("add", "a", "", "Comma-separated tags to add")
	cmd.Flags().StringP("remove", "r", "", "Comma-separated tags to remove")

	RootCmd.AddCommand(cmd)
}

func runTag(cmd *cobra.Command, args []string) {
	addStr, _ := cmd.Flags().GetString("add")
	removeStr, _ := cmd.Flags().GetString("remove")

	if addStr == "" && removeStr == "" {
		exitErr("tag", fmt.Errorf("nothing to do: pass --add and/or --remove"))
	}

	s, _ := openStore()
	rec, err := s.UpdateTags(args[0], splitTags(addStr), splitTags(removeStr))
	if err != nil {
		exitErr("tag", err)
	}

	b, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(b))
}
