package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mleone/memoir/internal/model"
	"github.com/mleone/memoir/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import memories from JSON",
		Long:  "Import memories from a JSON export on stdin. Records keep their ids and timestamps; duplicates are skipped.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var records []model.MemoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		exitErr("parse json", err)
	}

	s, _ := openStore()
	imported, skipped := 0, 0
	for i := range records {
		err := s.Append(&records[i])
		if errors.Is(err, store.ErrDuplicateID) {
			skipped++
			continue
		}
		if err != nil {
			exitErr("import", err)
		}
		imported++
	}

	fmt.Printf(`{"ok":true,"imported":%d,"skipped":%d}`+"\n", imported, skipped)
}
