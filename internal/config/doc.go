// Package config manages user-level settings stored at ~/.autositefix/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// default output directory used when --output is not passed.
package config
