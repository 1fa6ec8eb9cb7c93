// Package wordpress generates the WordPress fixes plugin stub: a fixed
// wp-content/plugins/autositefix-fixes tree holding a single PHP file whose
// content is a byte-constant template. It also provides the read-only
// diagnostics used by the doctor command.
package wordpress
