package manifest

import (
	"maps"
	"slices"

	toml "github.com/pelletier/go-toml/v2"
)

var cargoSections = []string{"dependencies", "dev-dependencies", "build-dependencies"}

func parseCargo(data []byte) ([]string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	names := cargoTables(doc)

	// [target.'cfg(unix)'.dependencies] and friends.
	if targets, ok := doc["target"].(map[string]any); ok {
		for _, cfg := range targets {
			if table, ok := cfg.(map[string]any); ok {
				names = append(names, cargoTables(table)...)
			}
		}
	}
	return names, nil
}

func cargoTables(table map[string]any) []string {
	var names []string
	for _, key := range cargoSections {
		if section, ok := table[key].(map[string]any); ok {
			names = append(names, slices.Collect(maps.Keys(section))...)
		}
	}
	return names
}
