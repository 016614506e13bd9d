package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent memories",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 20, "Number of entries")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, _ := openStore()
	records, err := s.Load()
	if err != nil {
		exitErr("list", err)
	}

	// Most recent last, like the log itself.
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	if len(records) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}
