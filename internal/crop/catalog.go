// Package crop holds the known crop catalog presented to the user.
// The catalog is informational only: any crop string is forwarded to the
// backend unvalidated.
package crop

import (
	_ "embed"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Crop is one selectable crop.
type Crop struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Catalog is the ordered set of known crops.
type Catalog struct {
	Crops []Crop `yaml:"crops"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, eris.Wrap(err, "crop: parse catalog")
	}
	return &c, nil
}

// Known reports whether the given identifier is in the catalog.
func (c *Catalog) Known(id string) bool {
	for _, cr := range c.Crops {
		if cr.ID == id {
			return true
		}
	}
	return false
}

// DisplayName returns the crop's display name, or the identifier itself
// for unknown crops.
func (c *Catalog) DisplayName(id string) string {
	for _, cr := range c.Crops {
		if cr.ID == id {
			return cr.Name
		}
	}
	return id
}
