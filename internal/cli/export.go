package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mleone/memoir/internal/export"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export memories",
		Long:  "Export the full store as markdown or JSON. The default format comes from config.",
		Run:   runExport,
	}

	cmd.Flags().StringP("format", "f", "", "Output format: md or json")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	format, _ := cmd.Flags().GetString("format")

	s, cfg := openStore()
	records, err := s.Load()
	if err != nil {
		exitErr("export", err)
	}

	if format == "" {
		format = cfg.DefaultExportFormat
	}
	switch format {
	case "json":
		out, err := export.JSON(records)
		if err != nil {
			exitErr("export", err)
		}
		fmt.Println(out)
	case "md":
		fmt.Print(export.Markdown(records))
	default:
		exitErr("export", fmt.Errorf("unknown format %q (use md or json)", format))
	}
}
