// Package card turns a draw result into a self-contained, render-ready
// share payload and owns the per-track visual configuration.
package card

import "github.com/youruser/fortunecard/internal/fortune"

// Skin is a complete visual styling variant applied uniformly across
// preview and export.
type Skin uint8

const (
	SkinPaper Skin = iota
	SkinTerminal
)

func (s Skin) String() string {
	if s == SkinTerminal {
		return "terminal"
	}
	return "paper"
}

// Visual holds a track's styling and asset configuration. The image source
// ordering is a contract: earlier entries are preferred content, later ones
// are generic placeholders.
type Visual struct {
	Emoji        string
	Name         string
	ModeLabel    string
	Accent       string
	SoftSurface  string
	ImageSources []string
}

var sharedImageFallback = []string{
	"/images/cat-ready.jpg",
	"/cat-ragdoll-seal-bicolor.jpg",
	"/videos/shake-draw.webm.png",
}

func trackImages(specific ...string) []string {
	return append(specific, sharedImageFallback...)
}

// VisualFor returns the visual configuration for a track. The switch is
// exhaustive over the closed Track set; an unknown track is a programmer
// error and panics rather than limping along with missing styling.
func VisualFor(t fortune.Track) Visual {
	switch t {
	case fortune.TrackTraditional:
		return Visual{
			Emoji:       "🎐",
			Name:        "传统签",
			ModeLabel:   "🎐 传统签",
			Accent:      "#E37970",
			SoftSurface: "#fbeae8",
			ImageSources: trackImages(
				"/images/ready-trad.jpg.png",
				"/images/ready-trad.jpg",
				"/images/shake-trad.webm.png",
			),
		}
	case fortune.TrackFreeform:
		return Visual{
			Emoji:       "🧶",
			Name:        "勉勉强强签",
			ModeLabel:   "🧶 勉勉强强签",
			Accent:      "#9E7A63",
			SoftSurface: "#f3ece6",
			ImageSources: trackImages(
				"/images/ready-mmm.jpg.png",
				"/images/ready-mmm.jpg",
				"/images/shake-mmm.webm.png",
			),
		}
	case fortune.TrackDecision:
		return Visual{
			Emoji:       "🧭",
			Name:        "Yes / No 签",
			ModeLabel:   "🧭 Yes / No 签",
			Accent:      "#E79A4A",
			SoftSurface: "#fcf0e2",
			ImageSources: trackImages(
				"/images/ready-yesno.jpg.png",
				"/images/ready-yesno.jpg",
				"/images/shake-yesno.webm.png",
			),
		}
	}
	panic("card: no visual for track " + t.String())
}
