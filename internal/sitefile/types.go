package sitefile

import "path/filepath"

// PlatformWordPress is the only platform the generator currently targets.
const PlatformWordPress = "wordpress"

// DefaultFileName is the conventional manifest name in a site directory.
const DefaultFileName = "autositefix.yaml"

// Manifest describes a site that autositefix generates fixes for.
type Manifest struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Platform    string `yaml:"platform" json:"platform"`
	Output      string `yaml:"output,omitempty" json:"output,omitempty"`
}

// OutputDir resolves the manifest's output directory against the location of
// the manifest file. An empty output field means the manifest's own directory.
func (m *Manifest) OutputDir(manifestPath string) string {
	base := filepath.Dir(manifestPath)
	switch {
	case m.Output == "":
		return base
	case filepath.IsAbs(m.Output):
		return m.Output
	default:
		return filepath.Join(base, m.Output)
	}
}
