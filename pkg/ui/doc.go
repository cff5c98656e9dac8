// Package ui detects terminal capabilities shared by the prompt and output
// packages.
package ui
