// internal/defs/types.go
package defs

import (
	"image/color"

	"go-crafting/pkg/render"
)

// ResourceKind is a base resource the player can collect. Never crafted.
type ResourceKind struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// RGBA возвращает цвет ресурса для отрисовки.
func (r ResourceKind) RGBA() color.RGBA { return render.MustParseHex(r.Color) }

// CraftedKind is the output of a recipe.
type CraftedKind struct {
	Name        string `yaml:"name" json:"name"`
	Color       string `yaml:"color" json:"color"`
	Description string `yaml:"description" json:"description"`
}

func (c CraftedKind) RGBA() color.RGBA { return render.MustParseHex(c.Color) }

// Recipe maps a set of ingredient names to one crafted result.
// Ingredient order is irrelevant.
type Recipe struct {
	Ingredients []string    `yaml:"ingredients"`
	Result      CraftedKind `yaml:"result"`
}

// SatisfiedBy reports whether every ingredient is present in names.
// Surplus names do not block a match and quantities are ignored.
func (r Recipe) SatisfiedBy(names map[string]struct{}) bool {
	for _, ing := range r.Ingredients {
		if _, ok := names[ing]; !ok {
			return false
		}
	}
	return true
}

// NameSet строит множество имён для SatisfiedBy.
func NameSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[Normalize(n)] = struct{}{}
	}
	return set
}

func (r Recipe) clone() Recipe {
	out := r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	return out
}
