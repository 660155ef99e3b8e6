package cmd

import (
	"fmt"

	"github.com/planbox/dimlines/internal/app"
	"github.com/planbox/dimlines/internal/dimension"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the computed dimension annotations for the sample scene",
	Long:  "Compute all annotations headlessly and print id, kind, axis and value per line.",
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	sc := app.SampleScene()
	measurements := dimension.Compute(sc)

	fmt.Printf("Annotations: %d\n", len(measurements))
	for _, m := range measurements {
		fmt.Printf("  %-30s %-6s %s %8.1f\n", m.ID, m.Kind, m.Axis, m.Value)
	}
}
