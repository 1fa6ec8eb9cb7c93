package wordpress

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate_CreatesStructure(t *testing.T) {
	tmp := t.TempDir()

	pluginDir, err := Generate(tmp)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := filepath.Join(tmp, "wp-content", "plugins", "autositefix-fixes")
	if pluginDir != want {
		t.Errorf("plugin dir = %q, want %q", pluginDir, want)
	}
	assertDirExists(t, pluginDir)

	content := readPluginFile(t, pluginDir)
	if !strings.HasPrefix(content, "<?php") {
		t.Error("plugin file does not start with <?php")
	}
	if !strings.Contains(content, "add_action('wp_head'") {
		t.Error("missing wp_head hook registration")
	}
	if !strings.Contains(content, "add_filter('the_content'") {
		t.Error("missing the_content hook registration")
	}
}

func TestGenerate_BaseDirNeedNotExist(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "site")

	pluginDir, err := Generate(base)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	assertDirExists(t, pluginDir)
	assertFileExists(t, filepath.Join(pluginDir, PluginMainFile))
}

func TestGenerate_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	first, err := Generate(tmp)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}

	second, err := Generate(tmp)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if first != second {
		t.Errorf("plugin dir changed between runs: %q vs %q", first, second)
	}

	if got := readPluginFile(t, second); got != PluginTemplate {
		t.Error("plugin content does not match the template after regeneration")
	}
}

func TestGenerate_OverwritesLocalEdits(t *testing.T) {
	tmp := t.TempDir()

	pluginDir, err := Generate(tmp)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mainFile := filepath.Join(pluginDir, PluginMainFile)
	if err := os.WriteFile(mainFile, []byte("<?php // edited\n"), FilePermNormal); err != nil {
		t.Fatalf("editing plugin file: %v", err)
	}

	if _, err := Generate(tmp); err != nil {
		t.Fatalf("regeneration failed: %v", err)
	}

	if got := readPluginFile(t, pluginDir); got != PluginTemplate {
		t.Error("local edits were not overwritten by regeneration")
	}
}

func TestGenerate_SurfacesFilesystemError(t *testing.T) {
	tmp := t.TempDir()

	// A regular file where a directory segment must go.
	blocker := filepath.Join(tmp, "wp-content")
	if err := os.WriteFile(blocker, []byte("not a directory"), FilePermNormal); err != nil {
		t.Fatalf("creating blocker file: %v", err)
	}

	if _, err := Generate(tmp); err == nil {
		t.Fatal("expected error when a path segment is a regular file")
	}
}

func readPluginFile(t *testing.T, pluginDir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(pluginDir, PluginMainFile))
	if err != nil {
		t.Fatalf("reading plugin file: %v", err)
	}
	return string(data)
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("%s is a directory, expected a file", path)
	}
}
