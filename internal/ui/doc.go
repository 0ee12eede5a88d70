// Package ui centralizes terminal styling (colors, result markers) shared by
// the console output and the TUI.
package ui
