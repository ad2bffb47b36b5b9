package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Category selects the line-ending and trailing-newline policy for a
// generated file. The policies are fixed so both drivers emit byte-identical
// trees for the same inputs.
type Category int

const (
	// CategoryConfig: machine-read files (manifests, tool configs, source
	// starters). Exactly one trailing newline.
	CategoryConfig Category = iota
	// CategoryDoc: prose documents. Body preserved, at least one trailing
	// newline.
	CategoryDoc
)

// WriteFile normalizes line endings per category and writes data to path,
// creating any missing parent directories. Existing files are overwritten;
// modules only ever write inside the freshly created project tree.
func WriteFile(path string, data []byte, cat Category) error {
	data = normalizeNewlines(data)
	switch cat {
	case CategoryConfig:
		data = append(bytes.TrimRight(data, "\n"), '\n')
	case CategoryDoc:
		if !bytes.HasSuffix(data, []byte("\n")) {
			data = append(data, '\n')
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// normalizeNewlines converts CRLF and bare CR to LF.
func normalizeNewlines(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
}
