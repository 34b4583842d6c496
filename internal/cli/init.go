package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/bg3planner/internal/config"
	"github.com/example/bg3planner/internal/templates"
	"github.com/example/bg3planner/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a data directory with default catalogs and presets",
		Long: `Write classes.json, races.json, backgrounds.json, skills.json and
presets.json into the data directory, plus .bg3/config.json.

Existing files are left untouched, so init is safe to re-run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			fmt.Printf("Initializing planner data in %s\n", cfg.DataDir)

			result, err := templates.Install(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("failed to install defaults: %w", err)
			}
			for _, name := range result.Written {
				fmt.Printf("✓ Created %s\n", name)
			}
			for _, name := range result.Skipped {
				fmt.Printf("  Kept existing %s\n", name)
			}

			if _, err := config.LoadConfig(cfg.DataDir); errors.Is(err, os.ErrNotExist) {
				if err := config.SaveConfig(cfg.DataDir, cfg); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Printf("✓ Created %s/config.json\n", config.StateDir)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  bg3 list")
			fmt.Println("  bg3 copy PRESET-001")

			return nil
		},
	}
}
