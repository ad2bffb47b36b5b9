// Package cli is the primary, cobra-based driver. It parses command-line
// input into project.Params, resolves them into a validated Spec, runs the
// scaffold engine, and renders the final status. The lite driver in
// internal/litecli maintains the same surface independently; the parity test
// suite keeps the two equivalent.
package cli
