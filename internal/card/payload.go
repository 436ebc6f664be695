package card

import (
	"fmt"
	"time"

	"github.com/youruser/fortunecard/internal/dates"
	"github.com/youruser/fortunecard/internal/fortune"
)

const studioMotto = "勉强的勉是共勉的勉，勉强的强是自强的强"

// SharePayload is the denormalized projection of a draw result. It is fully
// self-contained: rendering and export never look back at the track or
// entry tables.
type SharePayload struct {
	ModeLabel   string
	Title       string
	Lines       []string
	Favorable   []string
	Unfavorable []string
	Decision    fortune.Decision
	LunarDate   string
	SolarDate   string
	Timestamp   string
	Source      string
	Accent      string
	SoftSurface string
	// ImageSources is the ordered fallback chain for background imagery.
	ImageSources []string
}

// BuildPayload maps a draw result plus capture time and draw count into a
// render-ready payload. Pure and deterministic given its inputs; a nil
// converter selects the default lunar calendar.
func BuildPayload(result fortune.DrawResult, capturedAt time.Time, drawCount int, conv dates.Converter) SharePayload {
	v := VisualFor(result.Track)
	e := result.Entry

	p := SharePayload{
		ModeLabel:    v.ModeLabel,
		Favorable:    e.Favorable,
		Unfavorable:  e.Unfavorable,
		LunarDate:    dates.FormatLunar(capturedAt, conv),
		SolarDate:    dates.FormatSolar(capturedAt),
		Timestamp:    dates.FormatTimestamp(capturedAt),
		Source:       sourceLine(drawCount),
		Accent:       v.Accent,
		SoftSurface:  v.SoftSurface,
		ImageSources: v.ImageSources,
	}

	switch result.Track {
	case fortune.TrackTraditional:
		p.Title = e.ThemeWord
		p.Lines = nonEmpty(e.DetailText)
	case fortune.TrackFreeform:
		p.Title = freeformTitle(e)
		p.Lines = nonEmpty(e.ThemeWord, e.DetailText)
	case fortune.TrackDecision:
		p.Title = decisionTitle(e)
		p.Decision = e.Decision
		p.Lines = nonEmpty(e.DetailText)
	}

	return p
}

// sourceLine is the attribution footer. The count is clamped to at least 1
// so a fresh or corrupted counter never produces "第 0 次".
func sourceLine(drawCount int) string {
	if drawCount < 1 {
		drawCount = 1
	}
	return fmt.Sprintf("🐱 第 %d 次抽签 · %s", drawCount, studioMotto)
}

// freeformTitle resolves the entry's copy-type label; entries outside every
// category list keep their own theme word.
func freeformTitle(e fortune.Entry) string {
	if ct, ok := fortune.CopyTypeByEntryID(e.ID); ok {
		return ct.Label
	}
	return e.ThemeWord
}

func decisionTitle(e fortune.Entry) string {
	if e.ThemeWord != "" {
		return e.ThemeWord
	}
	return e.TopLine
}

func nonEmpty(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
