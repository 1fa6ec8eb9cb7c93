package wordpress

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckPlugin inspects a generated plugin tree under baseDirectory and writes
// a line per check to w. It never modifies the filesystem. The error return
// is for unexpected I/O failures only; findings are reported through w.
func CheckPlugin(w io.Writer, baseDirectory string) error {
	pluginDir := filepath.Join(baseDirectory, PluginRelativePath)
	fmt.Fprintln(w, "WordPress plugin check:")

	info, err := os.Stat(pluginDir)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", pluginDir)
		fmt.Fprintln(w, "         Run 'autositefix --wordpress' to generate")
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking plugin directory %s: %w", pluginDir, err)
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", pluginDir)
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", pluginDir)

	mainFile := filepath.Join(pluginDir, PluginMainFile)
	data, err := os.ReadFile(mainFile)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", mainFile)
		fmt.Fprintln(w, "         Run 'autositefix --wordpress' to generate")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading plugin file %s: %w", mainFile, err)
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", mainFile)

	if string(data) == PluginTemplate {
		fmt.Fprintln(w, "  [ OK ] content matches the generated template")
	} else {
		fmt.Fprintln(w, "  [WARN] content differs from the generated template")
		fmt.Fprintln(w, "         Local edits will be overwritten on the next generation")
	}

	checkHeaderVersion(w, data)
	return nil
}

// checkHeaderVersion validates the "Version:" line of the plugin header.
func checkHeaderVersion(w io.Writer, data []byte) {
	version, ok := headerField(data, "Version")
	if !ok {
		fmt.Fprintln(w, "  [WARN] plugin header has no Version line")
		return
	}
	if _, err := semver.NewVersion(version); err != nil {
		fmt.Fprintf(w, "  [WARN] plugin header version %q is not valid semver\n", version)
		return
	}
	fmt.Fprintf(w, "  [ OK ] plugin version %s\n", version)
}

// headerField extracts a "<name>: <value>" field from the plugin header
// comment block. WordPress headers are " * Name: Value" lines.
func headerField(data []byte, name string) (string, bool) {
	prefix := name + ":"
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// The header comment ends at the first closing marker.
		if strings.HasPrefix(line, "*/") {
			break
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}
