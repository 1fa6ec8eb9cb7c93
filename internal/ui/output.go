// Package ui provides colored status output for diagnostic commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// UI writes tagged, colored status lines.
type UI struct {
	output       io.Writer
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
}

// New creates a UI writing to stderr.
func New() *UI {
	return &UI{
		output:       os.Stderr,
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
	}
}

// NewWithWriter creates a UI with a custom output writer (useful for testing).
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	return ui
}

// Info prints an info message.
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message.
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.output, "[ OK ] %s\n", msg)
}

// Successf prints a formatted success message.
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARN] %s\n", msg)
}

// Warningf prints a formatted warning message.
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "[FAIL] %s\n", msg)
}

// Errorf prints a formatted error message.
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}
