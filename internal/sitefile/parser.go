package sitefile

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Parse reads a site manifest without validating it. Useful for inspection;
// callers that act on the manifest should use Load.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing site manifest %s: %w", path, err)
	}

	return &m, nil
}

// Load reads, schema-validates, and parses a site manifest. The manifest's
// version field must parse as semver.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site manifest %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating site manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid site manifest %s:\n%s", path, result.Summary())
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing site manifest %s: %w", path, err)
	}

	if _, err := semver.NewVersion(m.Version); err != nil {
		return nil, fmt.Errorf("site manifest %s: version %q is not valid semver", path, m.Version)
	}

	return &m, nil
}

// Summary renders validation issues as an indented, line-per-issue block.
func (r *ValidationResult) Summary() string {
	var b strings.Builder
	for i, issue := range r.Issues {
		if i > 0 {
			b.WriteString("\n")
		}
		if issue.Path != "" {
			fmt.Fprintf(&b, "  %s: %s", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(&b, "  %s", issue.Message)
		}
	}
	return b.String()
}
