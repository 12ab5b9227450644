package manifest

import "strings"

// parseRequirements reads the whole file; lines have no length limit.
func parseRequirements(data []byte) ([]string, error) {
	var names []string
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name := requirementName(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
