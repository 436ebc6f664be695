package export

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/fortunecard/internal/card"
	"github.com/youruser/fortunecard/internal/svg"
)

const (
	canvasW = svg.CanvasWidth
	canvasH = svg.CanvasHeight

	headerText = "🐱 赛博求签"
)

// cardFrame is the centered rounded rectangle the snapshot lands in.
var cardFrame = Frame{X: 90, Y: 280, W: canvasW - 180, H: canvasH - 560}

const cardRadius = 36

// composeSnapshotCard builds the final 1080x1920 raster: full-bleed
// background, legibility wash, header, accent-tinted card backdrop, the
// snapshot (optionally stacked with ready artwork), footer and QR stamp.
func composeSnapshotCard(p card.SharePayload, snapshot, readyArt, background image.Image, faces FaceSet, qr image.Image) image.Image {
	dc := gg.NewContext(canvasW, canvasH)

	paintBackground(dc, background)
	paintWash(dc)
	paintHeader(dc, faces)
	paintCardBackdrop(dc, p)

	content := insetFrame(cardFrame, 24)
	if readyArt != nil {
		aspectA := frameAspect(snapshot)
		aspectB := frameAspect(readyArt)
		a, b := FitTwoBlocks(content, aspectA, aspectB, 24)
		drawBlock(dc, snapshot, a, p)
		drawBlock(dc, readyArt, b, p)
	} else {
		drawCoverClipped(dc, snapshot, content, cardRadius)
		strokeAccentBorder(dc, content, cardRadius, p)
	}

	paintFooter(dc, p, faces)
	if qr != nil {
		stamp := imaging.Resize(qr, 120, 120, imaging.Lanczos)
		dc.DrawImage(stamp, canvasW-90-120, canvasH-90-120)
	}

	return dc.Image()
}

func frameAspect(img image.Image) float64 {
	b := img.Bounds()
	if b.Dx() == 0 {
		return 1
	}
	return float64(b.Dy()) / float64(b.Dx())
}

func insetFrame(f Frame, by float64) Frame {
	return Frame{X: f.X + by, Y: f.Y + by, W: f.W - 2*by, H: f.H - 2*by}
}

func paintBackground(dc *gg.Context, background image.Image) {
	if background != nil {
		filled := imaging.Fill(background, canvasW, canvasH, imaging.Center, imaging.Lanczos)
		dc.DrawImage(filled, 0, 0)
		return
	}
	// Gradient fallback: the warm paper tones, top to bottom.
	grad := gg.NewLinearGradient(0, 0, 0, canvasH)
	grad.AddColorStop(0, mustNRGBA("#faf5ec"))
	grad.AddColorStop(1, mustNRGBA("#eee2d3"))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, canvasW, canvasH)
	dc.Fill()
}

// paintWash lays a translucent white layer plus a vertical dim gradient so
// text stays readable over arbitrary backgrounds.
func paintWash(dc *gg.Context) {
	dc.SetRGBA(1, 1, 1, 0.22)
	dc.DrawRectangle(0, 0, canvasW, canvasH)
	dc.Fill()

	dim := gg.NewLinearGradient(0, 0, 0, canvasH)
	dim.AddColorStop(0, alphaBlack(0.38))
	dim.AddColorStop(0.45, alphaBlack(0.06))
	dim.AddColorStop(1, alphaBlack(0.44))
	dc.SetFillStyle(dim)
	dc.DrawRectangle(0, 0, canvasW, canvasH)
	dc.Fill()
}

func paintHeader(dc *gg.Context, faces FaceSet) {
	dc.SetFontFace(faces.Title)
	// Drop shadow first, then the glyph run centered as a whole.
	dc.SetRGBA(0, 0, 0, 0.45)
	dc.DrawStringAnchored(headerText, canvasW/2+3, 160+3, 0.5, 0.5)
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawStringAnchored(headerText, canvasW/2, 160, 0.5, 0.5)
}

func paintCardBackdrop(dc *gg.Context, p card.SharePayload) {
	accent, err := card.ParseHex(p.Accent)
	if err != nil {
		accent = mustNRGBA("#E37970")
	}
	stops := card.AccentStops(accent)

	grad := gg.NewLinearGradient(cardFrame.X, cardFrame.Y, cardFrame.X, cardFrame.Y+cardFrame.H)
	grad.AddColorStop(0, stops[0])
	grad.AddColorStop(0.5, stops[1])
	grad.AddColorStop(1, stops[2])
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(cardFrame.X, cardFrame.Y, cardFrame.W, cardFrame.H, cardRadius)
	dc.Fill()
}

// drawCoverClipped fits img over dst with cover semantics, clipped to the
// rounded rectangle.
func drawCoverClipped(dc *gg.Context, img image.Image, dst Frame, radius float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	fit := FitCover(float64(b.Dx()), float64(b.Dy()), dst)
	resized := imaging.Resize(img, roundInt(fit.W), roundInt(fit.H), imaging.Lanczos)

	dc.Push()
	dc.DrawRoundedRectangle(dst.X, dst.Y, dst.W, dst.H, radius)
	dc.Clip()
	dc.DrawImage(resized, roundInt(fit.X), roundInt(fit.Y))
	dc.ResetClip()
	dc.Pop()
}

func strokeAccentBorder(dc *gg.Context, f Frame, radius float64, p card.SharePayload) {
	accent, err := card.ParseHex(p.Accent)
	if err != nil {
		accent = mustNRGBA("#E37970")
	}
	dc.SetColor(card.MixWithWhite(accent, 0.2))
	dc.SetLineWidth(4)
	dc.DrawRoundedRectangle(f.X, f.Y, f.W, f.H, radius)
	dc.Stroke()
}

func drawBlock(dc *gg.Context, img image.Image, f Frame, p card.SharePayload) {
	drawCoverClipped(dc, img, f, 24)
	strokeAccentBorder(dc, f, 24, p)
}

func paintFooter(dc *gg.Context, p card.SharePayload, faces FaceSet) {
	dc.SetFontFace(faces.Caption)
	dc.SetRGBA(0, 0, 0, 0.4)
	dc.DrawStringAnchored(p.Source, canvasW/2+2, canvasH-118, 0.5, 0.5)
	dc.SetRGBA(1, 1, 1, 0.94)
	dc.DrawStringAnchored(p.Source, canvasW/2, canvasH-120, 0.5, 0.5)

	dc.SetRGBA(1, 1, 1, 0.78)
	dc.DrawStringAnchored("抽签时间："+p.Timestamp, canvasW/2, canvasH-70, 0.5, 0.5)
}

// drawDirectCard paints the card straight from the payload. It is the last
// rasterization tier: no snapshot, no vector round trip, just the simpler
// visual the failure-handling contract promises.
func drawDirectCard(p card.SharePayload, skin card.Skin, faces FaceSet) image.Image {
	dc := gg.NewContext(canvasW, canvasH)

	if skin == card.SkinTerminal {
		dc.SetColor(mustNRGBA("#09090b"))
		dc.Clear()
		dc.SetColor(mustNRGBA("#a3e635"))
		dc.SetLineWidth(4)
		dc.DrawRectangle(70, 70, canvasW-140, canvasH-140)
		dc.Stroke()
		dc.SetColor(mustNRGBA("#d9f99d"))
	} else {
		grad := gg.NewLinearGradient(0, 0, 0, canvasH)
		grad.AddColorStop(0, mustNRGBA("#faf5ec"))
		grad.AddColorStop(1, mustNRGBA("#eee2d3"))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, canvasW, canvasH)
		dc.Fill()

		dc.SetRGBA255(255, 250, 244, 240)
		dc.DrawRoundedRectangle(70, 70, canvasW-140, canvasH-140, 38)
		dc.Fill()

		accent, err := card.ParseHex(p.Accent)
		if err != nil {
			accent = mustNRGBA("#E37970")
		}
		dc.SetColor(accent)
	}

	dc.SetFontFace(faces.Title)
	dc.DrawString(p.Title, 92, 302)

	if skin == card.SkinTerminal {
		dc.SetColor(mustNRGBA("#f4f4f5"))
	} else {
		dc.SetColor(mustNRGBA("#4c4439"))
	}
	dc.SetFontFace(faces.Body)
	y := 520.0
	for _, line := range p.Lines {
		for _, chunk := range svg.WrapRunes(line, 19) {
			dc.DrawString(chunk, 92, y)
			y += 72
		}
	}

	dc.SetFontFace(faces.Caption)
	if skin == card.SkinTerminal {
		dc.SetColor(mustNRGBA("#a1a1aa"))
	} else {
		dc.SetRGBA255(111, 98, 82, 214)
	}
	dc.DrawString("抽签时间："+p.Timestamp, 92, canvasH-270)
	dc.DrawString("来源："+p.Source, 92, canvasH-220)

	return dc.Image()
}

// nearestResize scales without smoothing.
func nearestResize(img image.Image, w, h int) image.Image {
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func alphaBlack(a float64) color.NRGBA {
	return color.NRGBA{A: uint8(math.Round(a * 255))}
}

// mustNRGBA parses a hex literal known at compile time.
func mustNRGBA(hex string) color.NRGBA {
	c, err := card.ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
