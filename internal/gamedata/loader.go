package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// LoadFS reads and unmarshals a JSON file from the given filesystem.
// Use it with os.DirFS to override the embedded data.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read data file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Source selects where data files are read from.
type Source struct {
	fsys fs.FS
}

// Embedded returns the source backed by the files compiled into the binary.
func Embedded() Source {
	return Source{fsys: dataFS}
}

// FromFS returns a source backed by fsys, falling back to embedded data when nil.
func FromFS(fsys fs.FS) Source {
	if fsys == nil {
		return Embedded()
	}
	return Source{fsys: fsys}
}
