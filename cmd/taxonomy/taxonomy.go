package taxonomy

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nbluto/wolfvue-go/internal/conf"
	"github.com/nbluto/wolfvue-go/internal/taxonomy"
)

// Command creates the taxonomy command for inspecting the species catalog.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the active species catalog",
		Long:  "Print the species ids, names and categories the classifier resolves detections against.",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := taxonomy.Load(settings.Taxonomy.Path)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"ID", "Species", "Category"})
			for _, sp := range catalog.All() {
				tw.AppendRow(table.Row{strconv.Itoa(sp.ID), sp.Name, string(sp.Category)})
			}
			tw.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "%d species loaded\n", catalog.Len())
			return nil
		},
	}
}
