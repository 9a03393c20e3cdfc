package directive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML shape of a catalog:
//
//	standard: [Location, Push-Url, Redirect, Refresh, Replace-Url, Swap, Target]
//	custom: [Block, Trigger-After-Receive, Trigger-After-Settle, Trigger-After-Swap]
type catalogFile struct {
	Standard []Name `yaml:"standard"`
	Custom   []Name `yaml:"custom"`
}

// LoadCatalog reads a YAML catalog. Unknown fields are rejected.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var f catalogFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}
		return Catalog{}, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	return NewCatalog(f.Standard, f.Custom)
}

// LoadCatalogFS reads a YAML catalog from fsys.
func LoadCatalogFS(fsys fs.FS, name string) (Catalog, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog %q: %w", name, err)
	}
	defer file.Close()

	c, err := LoadCatalog(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog %q: %w", name, err)
	}
	return c, nil
}

// MarshalYAML encodes the catalog in the same shape LoadCatalog reads.
func (c Catalog) MarshalYAML() (any, error) {
	return catalogFile{Standard: c.Standard(), Custom: c.Custom()}, nil
}
