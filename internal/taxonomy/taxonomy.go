// Package taxonomy provides the species catalog: the mapping from detector
// class ids to display names and categories, plus the category conflict rule
// used by the decision engine. The catalog is loaded once and read-only.
package taxonomy

import (
	_ "embed" // For embedding the default catalog
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/nbluto/wolfvue-go/internal/errors"
)

//go:embed data/taxonomy.yaml
var defaultCatalogData []byte

// Category classifies a species for conflict detection.
type Category string

const (
	CategoryPredator Category = "predator"
	CategoryUngulate Category = "ungulate"
	// CategoryUnknown is assigned to detector class ids absent from the
	// catalog. Unknown species never participate in conflicts or dominance.
	CategoryUnknown Category = "unknown"
)

// Species is one catalog entry.
type Species struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
}

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	Version   int           `yaml:"version"`
	Conflicts [][2]Category `yaml:"conflicts"`
	Species   []Species     `yaml:"species"`
}

// Catalog is the loaded species catalog. Read-only after Load.
type Catalog struct {
	species   map[int]Species
	conflicts [][2]Category
}

// Load reads the species catalog from the given YAML file, or from the
// embedded default catalog when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalogData
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.New(err).
				Component("taxonomy").
				Category(errors.CategoryFileIO).
				FileContext(path, 0).
				Build()
		}
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New(err).
			Component("taxonomy").
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}

	catalog := &Catalog{
		species:   make(map[int]Species, len(file.Species)),
		conflicts: file.Conflicts,
	}
	for _, sp := range file.Species {
		if sp.Name == "" {
			return nil, errors.Newf("species id %d has no name", sp.ID).
				Component("taxonomy").
				Category(errors.CategoryTaxonomy).
				Build()
		}
		if _, exists := catalog.species[sp.ID]; exists {
			return nil, errors.Newf("duplicate species id %d in catalog", sp.ID).
				Component("taxonomy").
				Category(errors.CategoryTaxonomy).
				Build()
		}
		catalog.species[sp.ID] = sp
	}

	if len(catalog.species) == 0 {
		return nil, errors.Newf("catalog contains no species").
			Component("taxonomy").
			Category(errors.CategoryTaxonomy).
			Build()
	}

	return catalog, nil
}

// Lookup returns the catalog entry for a species id.
func (c *Catalog) Lookup(id int) (Species, bool) {
	sp, ok := c.species[id]
	return sp, ok
}

// Name returns the display name for a species id, or a placeholder for
// ids absent from the catalog.
func (c *Catalog) Name(id int) string {
	if sp, ok := c.species[id]; ok {
		return sp.Name
	}
	return fmt.Sprintf("Unknown_%d", id)
}

// CategoryOf returns the category for a species id. Ids absent from the
// catalog resolve to CategoryUnknown.
func (c *Catalog) CategoryOf(id int) Category {
	if sp, ok := c.species[id]; ok {
		return sp.Category
	}
	return CategoryUnknown
}

// InConflict reports whether two categories constitute a predator-prey
// conflict. When the catalog carries an explicit conflict list, only the
// listed pairs conflict; otherwise the default rule applies: predator
// against any non-predator category. Unknown never conflicts.
func (c *Catalog) InConflict(a, b Category) bool {
	if a == CategoryUnknown || b == CategoryUnknown || a == b {
		return false
	}

	if len(c.conflicts) > 0 {
		for _, pair := range c.conflicts {
			if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
				return true
			}
		}
		return false
	}

	return a == CategoryPredator || b == CategoryPredator
}

// All returns every catalog entry ordered by species id.
func (c *Catalog) All() []Species {
	all := make([]Species, 0, len(c.species))
	for _, sp := range c.species {
		all = append(all, sp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Len returns the number of species in the catalog.
func (c *Catalog) Len() int {
	return len(c.species)
}
