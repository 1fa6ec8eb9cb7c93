package sitefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validManifest = `name: example-shop
version: "1.2.0"
description: Storefront with broken head markup
platform: wordpress
output: public
`

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeManifest(t, t.TempDir(), validManifest)

	m, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Name != "example-shop" {
		t.Errorf("Name = %q, want %q", m.Name, "example-shop")
	}
	if m.Platform != PlatformWordPress {
		t.Errorf("Platform = %q, want %q", m.Platform, PlatformWordPress)
	}
	if m.Output != "public" {
		t.Errorf("Output = %q, want %q", m.Output, "public")
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_Valid(t *testing.T) {
	path := writeManifest(t, t.TempDir(), validManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", m.Version, "1.2.0")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "name: broken-site\nversion: \"1.0.0\"\nplatform: drupal\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unsupported platform")
	}
	if !strings.Contains(err.Error(), "invalid site manifest") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_BadSemver(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "name: broken-site\nversion: not-a-version\nplatform: wordpress\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for non-semver version")
	}
	if !strings.Contains(err.Error(), "not valid semver") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestManifest_OutputDir(t *testing.T) {
	manifestPath := filepath.Join("sites", "shop", DefaultFileName)

	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"empty means manifest dir", "", filepath.Join("sites", "shop")},
		{"relative resolves against manifest dir", "public", filepath.Join("sites", "shop", "public")},
		{"absolute passes through", string(filepath.Separator) + "srv/www", string(filepath.Separator) + "srv/www"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Output: tt.output}
			if got := m.OutputDir(manifestPath); got != filepath.Clean(tt.want) {
				t.Errorf("OutputDir = %q, want %q", got, filepath.Clean(tt.want))
			}
		})
	}
}
