package file

import (
	"github.com/spf13/cobra"

	"github.com/nbluto/wolfvue-go/internal/analysis"
	"github.com/nbluto/wolfvue-go/internal/conf"
)

// Command creates the file command for classifying a single detector export.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file [export.json]",
		Short: "Classify a single video's detector export",
		Long:  "Classify one video from its per-frame detector export (JSON or CSV).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Input.Path = args[0]
			return analysis.FileAnalysis(settings)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", settings.Output.File.Path, "Path to output directory")
	cmd.Flags().StringVarP(&settings.Output.File.Format, "format", "f", settings.Output.File.Format, "Output format: table, csv or json")
}
