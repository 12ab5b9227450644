package manifest

import (
	"path"

	"golang.org/x/mod/modfile"
)

// parseGoMod reports the last path element of every required module,
// so "github.com/gin-gonic/gin" contributes "gin".
func parseGoMod(data []byte) ([]string, error) {
	f, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(f.Require))
	for _, req := range f.Require {
		names = append(names, path.Base(req.Mod.Path))
	}
	return names, nil
}
