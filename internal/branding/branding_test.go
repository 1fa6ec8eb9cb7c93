package branding

import "testing"

func TestIdentity(t *testing.T) {
	if got := CLIName(); got != "autositefix" {
		t.Errorf("CLIName() = %q, want %q", got, "autositefix")
	}
	if got := DisplayName(); got != "AutoSiteFix" {
		t.Errorf("DisplayName() = %q, want %q", got, "AutoSiteFix")
	}
	if got := HomeDir(); got != ".autositefix" {
		t.Errorf("HomeDir() = %q, want %q", got, ".autositefix")
	}
	if got := EnvPrefix(); got != "AUTOSITEFIX" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "AUTOSITEFIX")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("output_dir"); got != "AUTOSITEFIX_OUTPUT_DIR" {
		t.Errorf("EnvVar(\"output_dir\") = %q, want %q", got, "AUTOSITEFIX_OUTPUT_DIR")
	}
}
