package wordpress

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory and file name constants for the generated plugin tree.
const (
	PluginDirName  = "autositefix-fixes"
	PluginMainFile = "autositefix-fixes.php"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// PluginRelativePath is the plugin directory relative to the site root.
var PluginRelativePath = filepath.Join("wp-content", "plugins", PluginDirName)

// PluginTemplate is the full content of the generated plugin file. Every
// generation writes this exact text; regenerating overwrites local edits.
const PluginTemplate = `<?php
/**
 * Plugin Name: AutoSiteFix Fixes
 * Description: Auto-generated stub that hooks into wp_head and the_content.
 * Version: 0.1.0
 * Author: AutoSiteFix
 */

if (!defined('ABSPATH')) {
    exit;
}

function autositefix_wp_head_stub() {
    echo "<!-- AutoSiteFix wp_head hook placeholder -->"; // phpcs:ignore WordPress.Security.EscapeOutput.OutputNotEscaped
}
add_action('wp_head', 'autositefix_wp_head_stub');

function autositefix_the_content_stub($content) {
    // TODO: Replace with AutoSiteFix content adjustments.
    return $content;
}
add_filter('the_content', 'autositefix_the_content_stub');
`

// Generate writes the WordPress fixes plugin stub under baseDirectory.
// The plugin directory is created if absent and the main file is rewritten
// unconditionally. Returns the path to the plugin directory.
func Generate(baseDirectory string) (string, error) {
	pluginDir := filepath.Join(baseDirectory, PluginRelativePath)
	if err := os.MkdirAll(pluginDir, DirPermNormal); err != nil {
		return "", fmt.Errorf("creating plugin directory %s: %w", pluginDir, err)
	}

	mainFile := filepath.Join(pluginDir, PluginMainFile)
	if err := os.WriteFile(mainFile, []byte(PluginTemplate), FilePermNormal); err != nil {
		return "", fmt.Errorf("writing plugin file %s: %w", mainFile, err)
	}

	return pluginDir, nil
}
