// internal/ui/font.go
package ui

import (
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"go-crafting/internal/config"
	"go-crafting/internal/defs"
)

// Fonts holds the faces used by the widgets.
type Fonts struct {
	Body  font.Face
	Title font.Face

	// встроенный bitmap-шрифт без диакритики
	fallback bool
}

// LoadFonts reads a TrueType/OpenType file. When the file is missing or
// broken the built-in 7x13 face is used and labels are folded to ASCII.
func LoadFonts(path string, logger *slog.Logger) *Fonts {
	body, title, err := loadFaces(path)
	if err != nil {
		logger.Warn("font unavailable, using built-in face", "path", path, "error", err)
		return &Fonts{Body: basicfont.Face7x13, Title: basicfont.Face7x13, fallback: true}
	}
	return &Fonts{Body: body, Title: title}
}

func loadFaces(path string) (font.Face, font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	body, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, nil, err
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.TitleFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, nil, err
	}
	return body, title, nil
}

// Label prepares s for drawing with the loaded face.
func (f *Fonts) Label(s string) string {
	if f.fallback {
		return defs.Fold(s)
	}
	return s
}
