package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bg3planner/internal/cli"
	"github.com/example/bg3planner/internal/version"
	"github.com/example/bg3planner/internal/wire"
)

func main() {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "bg3",
		Short:   "BG3 character planner",
		Version: version.String(),
		Long: `bg3 plans Baldur's Gate 3 characters from the command line.

Saved characters live in characters.json (one JSON object per line) in the
data directory, next to the read-only presets.json and the option catalogs
(classes.json, races.json, backgrounds.json, skills.json).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.Bootstrap(dataDir)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default $BG3_DATA_DIR or the working directory)")

	// Setup
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	// Character commands
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.CreateCmd())
	rootCmd.AddCommand(cli.EditCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.CopyCmd())
	rootCmd.AddCommand(cli.OptionsCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	err := rootCmd.Execute()
	wire.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
		os.Exit(1)
	}
}
