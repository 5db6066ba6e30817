package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()

	require.Len(t, cat.Resources(), 7)
	require.Len(t, cat.Recipes(), 4)

	res, ok := cat.Resource("Piatră")
	require.True(t, ok)
	assert.Equal(t, "#A9A9A9", res.Color)

	rec, ok := cat.RecipeFor("Sabie")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"Fier", "Oțel"}, rec.Ingredients)
	assert.Equal(t, "O sabie puternică.", rec.Result.Description)

	_, ok = cat.Resource("Diamant")
	assert.False(t, ok)
}

func TestDefaultCatalogOrder(t *testing.T) {
	var results []string
	for _, r := range DefaultCatalog().Recipes() {
		results = append(results, r.Result.Name)
	}
	assert.Equal(t, []string{"Topor", "Sabie", "Coroană", "Pătură"}, results)
}

func TestResourceLookupNormalizesName(t *testing.T) {
	cat := DefaultCatalog()

	// "Piatră" with a combining breve instead of the precomposed letter.
	decomposed := "Piatra\u0306"
	res, ok := cat.Resource("  " + decomposed + " ")
	require.True(t, ok)
	assert.Equal(t, "Piatră", res.Name)
}

func TestRecipesReturnsCopies(t *testing.T) {
	cat := DefaultCatalog()

	recipes := cat.Recipes()
	recipes[0].Ingredients[0] = "Aur"

	rec, ok := cat.RecipeFor("Topor")
	require.True(t, ok)
	assert.Equal(t, []string{"Lemn", "Piatră"}, rec.Ingredients)
}

func TestFirstMatchUsesDeclarationOrder(t *testing.T) {
	cat := DefaultCatalog()

	// Lemn+Piatră+Pânză satisfies both Topor and Pătură; Topor is declared first.
	rec, ok := cat.FirstMatch(NameSet("Pânză", "Lemn", "Piatră"))
	require.True(t, ok)
	assert.Equal(t, "Topor", rec.Result.Name)

	all := cat.Matching(NameSet("Pânză", "Lemn", "Piatră"))
	require.Len(t, all, 2)
	assert.Equal(t, "Pătură", all[1].Result.Name)

	_, ok = cat.FirstMatch(NameSet("Lemn"))
	assert.False(t, ok)
}

func TestNewCatalogValidation(t *testing.T) {
	wood := ResourceKind{Name: "Lemn", Color: "#8B4513"}
	stone := ResourceKind{Name: "Piatră", Color: "#A9A9A9"}
	axe := CraftedKind{Name: "Topor", Color: "#654321"}

	tests := []struct {
		name      string
		resources []ResourceKind
		recipes   []Recipe
		errText   string
	}{
		{"no resources", nil, []Recipe{{Ingredients: []string{"Lemn"}, Result: axe}}, "no resources"},
		{"no recipes", []ResourceKind{wood}, nil, "no recipes"},
		{"duplicate resource", []ResourceKind{wood, wood}, []Recipe{{Ingredients: []string{"Lemn"}, Result: axe}}, "duplicate name"},
		{"bad color", []ResourceKind{{Name: "Lemn", Color: "brown"}}, []Recipe{{Ingredients: []string{"Lemn"}, Result: axe}}, "invalid color"},
		{"empty ingredients", []ResourceKind{wood}, []Recipe{{Result: axe}}, "no ingredients"},
		{"unknown ingredient", []ResourceKind{wood}, []Recipe{{Ingredients: []string{"Fier"}, Result: axe}}, "unknown ingredient"},
		{"repeated ingredient", []ResourceKind{wood, stone}, []Recipe{{Ingredients: []string{"Lemn", "Lemn"}, Result: axe}}, "listed twice"},
		{"duplicate result", []ResourceKind{wood, stone}, []Recipe{
			{Ingredients: []string{"Lemn"}, Result: axe},
			{Ingredients: []string{"Piatră"}, Result: axe},
		}, "duplicate result"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.resources, tt.recipes)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path is the built-in catalog", func(t *testing.T) {
		cat, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Len(t, cat.Recipes(), 4)
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		data := []byte(`resources:
  - {name: Apa, color: "#0000FF"}
  - {name: Faina, color: "#FFFFFF"}
recipes:
  - ingredients: [Apa, Faina]
    result: {name: Paine, color: "#D2B48C", description: Paine calda.}
`)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		cat, err := LoadCatalog(path)
		require.NoError(t, err)
		rec, ok := cat.RecipeFor("Paine")
		require.True(t, ok)
		assert.Equal(t, "Paine calda.", rec.Result.Description)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseCatalog([]byte("resources: [::"))
		assert.Error(t, err)
	})
}

func TestFold(t *testing.T) {
	assert.Equal(t, "Otel", Fold("Oțel"))
	assert.Equal(t, "Patura", Fold("Pătură"))
	assert.Equal(t, "Panza", Fold("Pânză"))
	assert.Equal(t, "Lemn", Fold("Lemn"))
}
