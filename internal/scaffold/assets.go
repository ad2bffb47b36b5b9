package scaffold

import (
	"embed"
	"fmt"
)

// Template bodies are data, not control flow: they live under assets/ and are
// baked into both driver binaries so the trees they produce cannot drift.
//
//go:embed assets
var assetFS embed.FS

func readAsset(name string) (string, error) {
	data, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("reading embedded asset %s: %w", name, err)
	}
	return string(data), nil
}
