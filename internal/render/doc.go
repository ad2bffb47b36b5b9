// Package render produces the human-readable terminal status for a scaffold
// run: per-module results, verification warnings, and a tree view of the
// created files. It is shared by both drivers to keep their output identical.
package render
