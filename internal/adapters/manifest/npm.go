package manifest

import (
	"encoding/json"
	"maps"
	"slices"
)

var npmSections = []string{"dependencies", "devDependencies"}

func parsePackageJSON(data []byte) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var names []string
	for _, key := range npmSections {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		var section map[string]json.RawMessage
		if err := json.Unmarshal(raw, &section); err != nil {
			// Non-object sections are ignored.
			continue
		}
		names = append(names, slices.Collect(maps.Keys(section))...)
	}
	return names, nil
}
