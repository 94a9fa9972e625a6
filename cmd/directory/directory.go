package directory

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nbluto/wolfvue-go/internal/analysis"
	"github.com/nbluto/wolfvue-go/internal/conf"
)

// Command creates the directory command for classifying every detector
// export in a directory.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory [path]",
		Short: "Classify all detector exports in a directory",
		Long:  "Provide a directory path to classify every JSON and CSV detector export within it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Input.Path = args[0]

			// Interrupts stop the feed and let in-flight videos finish.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return analysis.DirectoryAnalysis(ctx, settings)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().BoolVarP(&settings.Input.Recursive, "recursive", "r", false, "Recursively classify subdirectories")
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", settings.Output.File.Path, "Path to output directory")
	cmd.Flags().StringVarP(&settings.Output.File.Format, "format", "f", settings.Output.File.Format, "Output format: table, csv or json")
	cmd.Flags().IntVarP(&settings.Processing.Workers, "workers", "w", settings.Processing.Workers, "Videos classified in parallel, 0 for all CPUs")
}
