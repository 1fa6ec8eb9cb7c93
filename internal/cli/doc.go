// Package cli defines the Cobra command tree for the autositefix CLI. The
// root command carries the generation flags (--wordpress, --output, --site);
// each other file registers one subcommand. Command implementations delegate
// to internal packages for business logic and only handle flag parsing, I/O
// formatting, and exit-code mapping.
package cli
