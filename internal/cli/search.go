package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mleone/memoir/internal/search"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search memories by keyword",
		Long:  "Rank memories by TF-IDF relevance, time decay, and importance. An empty query lists by recency.",
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (default from config)")
	cmd.Flags().StringP("tag", "t", "", "Only rank memories carrying this tag")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	tag, _ := cmd.Flags().GetString("tag")
	query := strings.Join(args, " ")

	s, cfg := openStore()
	records, err := s.Load()
	if err != nil {
		exitErr("search", err)
	}

	if limit <= 0 {
		limit = cfg.MaxResults
	}
	results := search.Rank(records, query, search.Options{
		Limit:       limit,
		Tag:         tag,
		DecayLambda: cfg.TimeDecayLambda,
	})

	if len(results) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(b))
}
