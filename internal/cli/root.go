package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/autositefix/autositefix/internal/branding"
	"github.com/autositefix/autositefix/internal/config"
	"github.com/autositefix/autositefix/internal/sitefile"
	"github.com/autositefix/autositefix/internal/wordpress"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagWordPress bool
	flagOutput    string
	flagSite      string
)

// UsageError marks a command-line usage problem so main can map it to the
// conventional argument-parsing exit code 2.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

// IsUsageError reports whether err is (or wraps) a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates fix stubs for content management platforms.

Pass --wordpress to generate the WordPress fixes plugin stub
(wp-content/plugins/autositefix-fixes) under the output directory, or point
--site at an autositefix.yaml manifest that selects the platform and output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagWordPress, "wordpress", false, "Generate the WordPress fixes plugin stub (wp-content/plugins/autositefix-fixes)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "Directory where generated files should be written (default: current directory)")
	rootCmd.Flags().StringVar(&flagSite, "site", "", "Path to an autositefix.yaml site manifest")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{msg: err.Error()}
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	config.Load()
	return rootCmd.Execute()
}

func runGenerate(cmd *cobra.Command) error {
	var site *sitefile.Manifest
	if flagSite != "" {
		m, err := sitefile.Load(flagSite)
		if err != nil {
			return err
		}
		site = m
	}

	wantWordPress := flagWordPress || (site != nil && site.Platform == sitefile.PlatformWordPress)
	if !wantWordPress {
		_ = cmd.Usage()
		return &UsageError{msg: "no mode selected: pass --wordpress to generate the WordPress fixes plugin stub"}
	}

	base, err := resolveOutput(site)
	if err != nil {
		return err
	}

	pluginDir, err := wordpress.Generate(base)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated WordPress fixes plugin stub at %s\n", pluginDir)
	return nil
}

// resolveOutput picks the base directory for generated files: the --output
// flag wins, then the site manifest, then the configured output_dir, then
// the current working directory.
func resolveOutput(site *sitefile.Manifest) (string, error) {
	if flagOutput != "" {
		return flagOutput, nil
	}
	if site != nil {
		return site.OutputDir(flagSite), nil
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
