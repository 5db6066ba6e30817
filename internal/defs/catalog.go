// internal/defs/catalog.go
package defs

import (
	"errors"
	"fmt"

	"go-crafting/pkg/render"
)

// Catalog is the immutable library of resources and recipes.
// Built once at startup and shared read-only.
type Catalog struct {
	resources []ResourceKind
	recipes   []Recipe
	byName    map[string]int
	byResult  map[string]int
}

// NewCatalog validates the definitions and builds the lookup tables.
// Names are normalized; recipe order is preserved because it breaks ties
// when several recipes match the same slot.
func NewCatalog(resources []ResourceKind, recipes []Recipe) (*Catalog, error) {
	if len(resources) == 0 {
		return nil, errors.New("catalog has no resources")
	}
	if len(recipes) == 0 {
		return nil, errors.New("catalog has no recipes")
	}

	c := &Catalog{
		resources: make([]ResourceKind, 0, len(resources)),
		recipes:   make([]Recipe, 0, len(recipes)),
		byName:    make(map[string]int, len(resources)),
		byResult:  make(map[string]int, len(recipes)),
	}

	for i, res := range resources {
		res.Name = Normalize(res.Name)
		if res.Name == "" {
			return nil, fmt.Errorf("resource #%d: empty name", i)
		}
		if _, dup := c.byName[res.Name]; dup {
			return nil, fmt.Errorf("resource %q: duplicate name", res.Name)
		}
		if _, err := render.ParseHex(res.Color); err != nil {
			return nil, fmt.Errorf("resource %q: %w", res.Name, err)
		}
		c.byName[res.Name] = len(c.resources)
		c.resources = append(c.resources, res)
	}

	for i, rec := range recipes {
		rec = rec.clone()
		rec.Result.Name = Normalize(rec.Result.Name)
		if rec.Result.Name == "" {
			return nil, fmt.Errorf("recipe #%d: empty result name", i)
		}
		if _, dup := c.byResult[rec.Result.Name]; dup {
			return nil, fmt.Errorf("recipe %q: duplicate result", rec.Result.Name)
		}
		if _, err := render.ParseHex(rec.Result.Color); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", rec.Result.Name, err)
		}
		if len(rec.Ingredients) == 0 {
			return nil, fmt.Errorf("recipe %q: no ingredients", rec.Result.Name)
		}
		seen := make(map[string]struct{}, len(rec.Ingredients))
		for j, ing := range rec.Ingredients {
			ing = Normalize(ing)
			if _, ok := c.byName[ing]; !ok {
				return nil, fmt.Errorf("recipe %q: unknown ingredient %q", rec.Result.Name, ing)
			}
			if _, dup := seen[ing]; dup {
				return nil, fmt.Errorf("recipe %q: ingredient %q listed twice", rec.Result.Name, ing)
			}
			seen[ing] = struct{}{}
			rec.Ingredients[j] = ing
		}
		c.byResult[rec.Result.Name] = len(c.recipes)
		c.recipes = append(c.recipes, rec)
	}

	return c, nil
}

// Resource looks up a resource by name.
func (c *Catalog) Resource(name string) (ResourceKind, bool) {
	i, ok := c.byName[Normalize(name)]
	if !ok {
		return ResourceKind{}, false
	}
	return c.resources[i], true
}

// RecipeFor looks up the recipe producing resultName.
func (c *Catalog) RecipeFor(resultName string) (Recipe, bool) {
	i, ok := c.byResult[Normalize(resultName)]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[i].clone(), true
}

// Resources returns the resources in declaration order.
func (c *Catalog) Resources() []ResourceKind {
	return append([]ResourceKind(nil), c.resources...)
}

// Recipes returns the recipes in declaration order.
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.clone()
	}
	return out
}

// FirstMatch returns the first recipe, in declaration order, satisfied by names.
func (c *Catalog) FirstMatch(names map[string]struct{}) (Recipe, bool) {
	for _, r := range c.recipes {
		if r.SatisfiedBy(names) {
			return r.clone(), true
		}
	}
	return Recipe{}, false
}

// Matching returns every recipe satisfied by names, in declaration order.
func (c *Catalog) Matching(names map[string]struct{}) []Recipe {
	var out []Recipe
	for _, r := range c.recipes {
		if r.SatisfiedBy(names) {
			out = append(out, r.clone())
		}
	}
	return out
}
