package export

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FaceSet holds the three text sizes the canvas composition uses. When no
// font file is configured the bitmap fallback face serves all three; the
// card still exports, just with plainer typography.
type FaceSet struct {
	Title   font.Face
	Body    font.Face
	Caption font.Face
}

// LoadFaceSet loads a TTF/OTF at the sizes the 1080x1920 canvas needs.
// An empty path or a load failure degrades to the built-in bitmap face.
func LoadFaceSet(path string) FaceSet {
	fallback := FaceSet{
		Title:   basicfont.Face7x13,
		Body:    basicfont.Face7x13,
		Caption: basicfont.Face7x13,
	}
	if path == "" {
		return fallback
	}

	title, err := gg.LoadFontFace(path, 64)
	if err != nil {
		return fallback
	}
	body, err := gg.LoadFontFace(path, 41)
	if err != nil {
		return fallback
	}
	caption, err := gg.LoadFontFace(path, 26)
	if err != nil {
		return fallback
	}
	return FaceSet{Title: title, Body: body, Caption: caption}
}
