// Package logger provides slog attribute helpers for the widget's
// structured logging. Helpers follow the empty-Attr pattern: passing a
// nil error or blank id yields an attribute slog silently drops, so
// call sites need no nil checks.
package logger
