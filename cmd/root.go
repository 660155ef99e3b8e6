package cmd

import (
	"fmt"
	"os"

	"github.com/planbox/dimlines/internal/app"
	"github.com/planbox/dimlines/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dimlines",
	Short: "Interactive dimensioning overlay for furniture layouts",
	Long: `dimlines renders axis-aligned furniture boxes with automatic
dimension annotations: widths, heights, depths, plinth heights and the
gaps between modules. Annotations can be selected, dragged and hidden.`,
	Version: version.GetFullVersion(),
	Run: func(cmd *cobra.Command, args []string) {
		app.Run(nil)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
