package app

import (
	"fmt"
	"strings"

	"hangulpad/internal/layout"
)

// ResolveLayout loads a layout by name and merges the keypair file on top of
// it when one is given.
func ResolveLayout(name, keypairPath string) (*layout.Layout, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "dubeolsik"
	}
	loaded, err := layout.Load(normalized)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", normalized, err)
	}
	if keypairPath != "" {
		pairs, err := layout.LoadCustomPairs(keypairPath)
		if err != nil {
			return nil, err
		}
		if err := layout.ApplyCustomPairs(loaded, pairs); err != nil {
			return nil, err
		}
	}
	return loaded, nil
}
