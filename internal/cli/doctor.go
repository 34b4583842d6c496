package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bg3planner/internal/adapters/jsonfile"
	"github.com/example/bg3planner/internal/ports/secondary"
	"github.com/example/bg3planner/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for data directory validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the planner data directory",
		Long: `Check that every data file is present and parseable.

A missing characters.json is fine (it is created on first save). Missing
catalogs or presets are warnings: the planner still works, with empty
option lists and no presets to copy. Unparseable files are errors.

Examples:
  bg3 doctor              # Run full check
  bg3 doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runChecks(cmd)

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Fix or remove the broken files.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("data directory validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func runChecks(cmd *cobra.Command) []CheckResult {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = NewContext()
	}
	dataDir := wire.Config().DataDir
	logger := wire.Logger()

	characters := jsonfile.NewCharacterRepository(dataDir, logger)
	presets := jsonfile.NewPresetCatalog(dataDir, logger)
	options := jsonfile.NewOptionCatalog(dataDir, logger)

	results := []CheckResult{}

	records, err := characters.LoadAll(ctx)
	results = append(results, fileCheck("Characters", err, len(records), true))

	exists, err := presets.Exists(ctx)
	if err == nil && !exists {
		results = append(results, CheckResult{
			Name:    "Presets",
			Status:  "⚠",
			Details: "  presets.json not found\n  Run: bg3 init",
		})
	} else {
		loaded, loadErr := presets.LoadPresets(ctx)
		if err == nil {
			err = loadErr
		}
		results = append(results, fileCheck("Presets", err, len(loaded), false))
	}

	for _, name := range []string{
		secondary.CatalogClasses,
		secondary.CatalogRaces,
		secondary.CatalogBackgrounds,
		secondary.CatalogSkills,
	} {
		values, err := options.Load(ctx, name)
		results = append(results, fileCheck("Catalog "+name, err, len(values), false))
	}

	return results
}

// fileCheck turns a load result into a CheckResult. Empty is only fine when
// emptyOK is set.
func fileCheck(name string, err error, count int, emptyOK bool) CheckResult {
	if err != nil {
		return CheckResult{Name: name, Status: "✗", Details: "  " + err.Error()}
	}
	if count == 0 && !emptyOK {
		return CheckResult{Name: name, Status: "⚠", Details: "  empty or missing\n  Run: bg3 init"}
	}
	return CheckResult{Name: name, Status: "✓"}
}
