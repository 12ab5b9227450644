package manifest

import (
	"strings"

	"github.com/BurntSushi/toml"
)

type pyProject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func parsePyProject(data []byte) ([]string, error) {
	var doc pyProject
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}

	var names []string
	for _, req := range doc.Project.Dependencies {
		if name := requirementName(req); name != "" {
			names = append(names, name)
		}
	}
	for name := range doc.Tool.Poetry.Dependencies {
		if !strings.EqualFold(name, "python") {
			names = append(names, name)
		}
	}
	return names, nil
}
