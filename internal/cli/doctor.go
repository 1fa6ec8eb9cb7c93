package cli

import (
	"fmt"
	"os"

	"github.com/autositefix/autositefix/internal/config"
	"github.com/autositefix/autositefix/internal/sitefile"
	"github.com/autositefix/autositefix/internal/ui"
	"github.com/autositefix/autositefix/internal/wordpress"
	"github.com/spf13/cobra"
)

var (
	doctorOutput string
	doctorSite   string
)

func init() {
	doctorCmd.Flags().StringVar(&doctorOutput, "output", "", "Base directory of the generated site tree (default: current directory)")
	doctorCmd.Flags().StringVar(&doctorSite, "check-site", "", "Validate a site manifest at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for generated fix stubs",
	Long: `Run diagnostic checks against a generated site tree.

Without flags, inspects the WordPress plugin stub under the output directory.
With --check-site, validates a site manifest instead. Doctor never modifies
the filesystem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if doctorSite != "" {
			return runSiteCheck(cmd, doctorSite)
		}

		base, err := resolveDoctorOutput()
		if err != nil {
			return err
		}
		return wordpress.CheckPlugin(cmd.OutOrStdout(), base)
	},
}

// runSiteCheck validates a site manifest and reports each issue.
func runSiteCheck(cmd *cobra.Command, path string) error {
	out := ui.NewWithWriter(cmd.OutOrStdout())

	result, err := sitefile.ValidateFile(path)
	if err != nil {
		return err
	}

	if result.Valid {
		out.Successf("%s is a valid site manifest", path)
		return nil
	}

	for _, issue := range result.Issues {
		if issue.Path != "" {
			out.Errorf("%s: %s", issue.Path, issue.Message)
		} else {
			out.Error(issue.Message)
		}
	}
	return fmt.Errorf("site manifest %s has %d issue(s)", path, len(result.Issues))
}

// resolveDoctorOutput mirrors the generate-side resolution, minus manifests:
// --output flag, then configured output_dir, then the current directory.
func resolveDoctorOutput() (string, error) {
	if doctorOutput != "" {
		return doctorOutput, nil
	}
	if dir := config.Get(config.KeyOutputDir); dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
