// Package ui provides styled terminal output for setupvar-builder.
//
// Rendering uses lipgloss styles with a shared color palette. Styled
// output is only appropriate when stdout is a terminal; callers check
// IsTerminal and fall back to plain formatting when output is piped or
// redirected, so exported scripts and JSON stay clean.
//
// The renderers are stateless: RenderModel draws the parsed settings
// report as bordered per-store sections, RenderScript previews a
// compiled script, and RenderError formats failures. Widths adapt to the
// terminal via GetTerminalWidth, clamped to a readable range.
package ui
