// Package sitefile parses and validates autositefix.yaml site manifests.
// A site manifest names a site, pins its platform, and optionally sets the
// base directory that generated fixes are written under. Validation runs
// against an embedded JSON schema.
package sitefile
