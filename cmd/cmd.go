// Package cmd wires the command line interface to the analysis pipeline.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nbluto/wolfvue-go/cmd/directory"
	"github.com/nbluto/wolfvue-go/cmd/file"
	"github.com/nbluto/wolfvue-go/cmd/taxonomy"
	"github.com/nbluto/wolfvue-go/internal/conf"
)

// RootCommand creates and returns the root command with all subcommands
// attached.
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wolfvue",
		Short: "WolfVue trail camera video classifier",
		Long:  "Classifies trail camera videos by species from per-frame detector exports.",
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		file.Command(settings),
		directory.Command(settings),
		taxonomy.Command(settings),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Command line flags override the config file; validate the merged
		// result before any subcommand runs.
		return conf.ValidateSettings(settings)
	}

	return rootCmd
}

// setupFlags defines the flags shared by every subcommand. Defaults come
// from viper so the config file and environment stay authoritative when a
// flag is not given.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	flags := rootCmd.PersistentFlags()

	flags.BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	flags.Float64VarP(&settings.Classifier.ConfidenceThreshold, "threshold", "t",
		viper.GetFloat64("classifier.confidencethreshold"), "Minimum detection confidence, 0.0 to 1.0")
	flags.Float64Var(&settings.Classifier.DominantSpeciesThreshold, "dominance",
		viper.GetFloat64("classifier.dominantspeciesthreshold"), "Detection share a species must exceed to name the video")
	flags.IntVar(&settings.Classifier.MaxSpeciesTransitions, "max-transitions",
		viper.GetInt("classifier.maxspeciestransitions"), "Species transitions tolerated before the video is Unsorted")
	flags.IntVar(&settings.Classifier.ConsecutiveEmptyFrames, "empty-frames",
		viper.GetInt("classifier.consecutiveemptyframes"), "Empty frame gap length that ends a species run")
	flags.StringVar(&settings.Taxonomy.Path, "taxonomy",
		viper.GetString("taxonomy.path"), "Path to a custom taxonomy YAML file")

	if err := viper.BindPFlags(flags); err != nil {
		fmt.Printf("error binding flags: %v\n", err)
	}
}
