package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mleone/memoir/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a memory",
		Long:  "Add a memory. Text can be a positional arg or piped via stdin.",
		Run:   runAdd,
	}

	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().String("meta", "", "key=value metadata pairs, comma-separated")
	cmd.Flags().IntP("importance", "i", model.DefaultImportance, "Importance 1-5")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	tagsStr, _ := cmd.Flags().GetString("tags")
	metaStr, _ := cmd.Flags().GetString("meta")
	importance, _ := cmd.Flags().GetInt("importance")

	// Text: positional arg first, then check stdin
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			text = string(b)
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		exitErr("add", fmt.Errorf("text is required (positional arg or stdin)"))
	}

	meta, err := parseMeta(metaStr)
	if err != nil {
		exitErr("add", err)
	}

	rec, err := model.New(text, splitTags(tagsStr), meta, importance)
	if err != nil {
		exitErr("add", err)
	}

	s, _ := openStore()
	if err := s.Append(rec); err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(rec)
	fmt.Println(string(b))
}

// parseMeta parses comma-separated key=value pairs. A pair without
// "=" or with an empty key is an error rather than a silent drop.
func parseMeta(s string) (map[string]any, error) {
	if s == "" {
		return nil, nil
	}
	meta := map[string]any{}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --meta pair %q (want key=value)", strings.TrimSpace(pair))
		}
		k = strings.TrimSpace(k)
		if k == "" {
			return nil, fmt.Errorf("malformed --meta pair %q (empty key)", strings.TrimSpace(pair))
		}
		meta[k] = strings.TrimSpace(v)
	}
	return meta, nil
}
