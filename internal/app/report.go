package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-crafting/internal/config"
	"go-crafting/internal/craft"
	"go-crafting/internal/defs"
	"go-crafting/pkg/render"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(render.Hex(config.WinTitleColor)))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(config.Palette.TextMuted)))
)

// swatch renders name on its own color, like a tile on screen.
func swatch(name string, bg string) string {
	c := render.MustParseHex(bg)
	fg := render.TextColorFor(c, config.Palette.TextLight, config.Palette.TextDark)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(render.Hex(c))).
		Foreground(lipgloss.Color(render.Hex(fg))).
		Padding(0, 1).
		Render(name)
}

func recipeLine(r defs.Recipe) string {
	return fmt.Sprintf("%s = %s", r.Result.Name, strings.Join(r.Ingredients, " + "))
}

// WriteStatus prints a game snapshot: inventory grouped by resource,
// crafted history, discoverable recipes and the win flag.
func WriteStatus(w io.Writer, snap craft.Snapshot) error {
	var b strings.Builder

	inv := snap.Inventory
	b.WriteString(headingStyle.Render(fmt.Sprintf("Inventory (%d)", len(inv))) + "\n")
	if len(inv) == 0 {
		b.WriteString("  " + mutedStyle.Render("empty") + "\n")
	}
	var order []defs.ResourceKind
	counts := make(map[string]int)
	for _, it := range inv {
		if counts[it.Kind.Name] == 0 {
			order = append(order, it.Kind)
		}
		counts[it.Kind.Name]++
	}
	for _, k := range order {
		fmt.Fprintf(&b, "  %s x%d\n", swatch(k.Name, k.Color), counts[k.Name])
	}

	crafted := snap.Crafted
	b.WriteString(headingStyle.Render(fmt.Sprintf("Crafted (%d)", len(crafted))) + "\n")
	if len(crafted) == 0 {
		b.WriteString("  " + mutedStyle.Render("nothing yet") + "\n")
	}
	for _, c := range crafted {
		fmt.Fprintf(&b, "  %s %s\n", swatch(c.Name, c.Color), mutedStyle.Render(c.Description))
	}

	disc := snap.Discoverable
	b.WriteString(headingStyle.Render("Discoverable") + "\n")
	if len(disc) == 0 {
		b.WriteString("  " + mutedStyle.Render("none") + "\n")
	}
	for _, r := range disc {
		fmt.Fprintf(&b, "  %s\n", recipeLine(r))
	}

	fmt.Fprintf(&b, "%s %t\n", headingStyle.Render("Won:"), snap.Won)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCatalog prints resources and recipes in declaration order.
func WriteCatalog(w io.Writer, cat *defs.Catalog) error {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Resources") + "\n")
	for _, r := range cat.Resources() {
		fmt.Fprintf(&b, "  %s %s\n", swatch(r.Name, r.Color), mutedStyle.Render(r.Color))
	}

	b.WriteString(headingStyle.Render("Recipes") + "\n")
	for _, r := range cat.Recipes() {
		fmt.Fprintf(&b, "  %s  %s\n", recipeLine(r), mutedStyle.Render(r.Result.Description))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
