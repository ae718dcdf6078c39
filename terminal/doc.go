// Package terminal holds the process-level terminal concerns that sit outside tcell:
// color capability detection, TTY detection for headless fallback, and crash restoration.
package terminal
