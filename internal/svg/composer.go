// Package svg composes the self-contained 1080x1920 vector card document
// used both as the rasterization base for export and as the rendering
// fallback when no live preview exists.
package svg

import (
	"fmt"
	"strings"

	"github.com/youruser/fortunecard/internal/card"
	"github.com/youruser/fortunecard/internal/fortune"
)

const (
	// CanvasWidth and CanvasHeight are the fixed card dimensions. Export
	// output matches them exactly regardless of device.
	CanvasWidth  = 1080
	CanvasHeight = 1920

	// wrapWidth is the hard layout contract: body text wraps at 19 CJK
	// code points per line.
	wrapWidth = 19

	padding = 92
	cardX   = 70
	cardY   = 70
)

const (
	paperFontStack    = "PingFang SC, Microsoft YaHei, Noto Sans SC, sans-serif"
	terminalFontStack = "Consolas, 'Courier New', monospace"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape makes a string safe for use inside the vector document. Content
// may originate outside the static tables, so this is not optional.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}

// WrapRunes splits s into chunks of at most width code points. Code-point
// wrapping is the accepted approximation for CJK layout here.
func WrapRunes(s string, width int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{s}
	}
	var chunks []string
	for i := 0; i < len(runes); i += width {
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

// BuildVectorCard renders the payload as a complete SVG document in the
// given skin.
func BuildVectorCard(p card.SharePayload, skin card.Skin) string {
	if skin == card.SkinTerminal {
		return buildTerminalCard(p)
	}
	return buildPaperCard(p)
}

// bodyLines flattens payload body plus tag lines into wrapped lines.
func bodyLines(p card.SharePayload) []string {
	lines := make([]string, 0, len(p.Lines)+2)
	lines = append(lines, p.Lines...)
	if len(p.Favorable) > 0 {
		lines = append(lines, "宜："+strings.Join(p.Favorable, " / "))
	}
	if len(p.Unfavorable) > 0 {
		lines = append(lines, "忌："+strings.Join(p.Unfavorable, " / "))
	}

	var wrapped []string
	for _, l := range lines {
		wrapped = append(wrapped, WrapRunes(l, wrapWidth)...)
	}
	return wrapped
}

func decisionBadgeText(d fortune.Decision) string {
	switch d {
	case fortune.DecisionYes:
		return "YES"
	case fortune.DecisionNo:
		return "NO"
	case fortune.DecisionWait:
		return "WAIT"
	}
	return ""
}

func buildPaperCard(p card.SharePayload) string {
	cardW := CanvasWidth - 140
	cardH := CanvasHeight - 140

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
  <defs>
    <linearGradient id="bgPaper" x1="0" y1="0" x2="0" y2="1">
      <stop offset="0%%" stop-color="#faf5ec" />
      <stop offset="100%%" stop-color="%s" />
    </linearGradient>
  </defs>
  <rect width="%d" height="%d" fill="url(#bgPaper)" />
  <rect width="%d" height="%d" fill="#fffaf3" fill-opacity="0.58"/>
  <rect x="%d" y="%d" width="%d" height="%d" rx="38" fill="#fffaf4" fill-opacity="0.94" stroke="#d8ccbf" stroke-opacity="0.62" stroke-width="2"/>
`,
		CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight,
		Escape(p.SoftSurface),
		CanvasWidth, CanvasHeight,
		CanvasWidth, CanvasHeight,
		cardX, cardY, cardW, cardH,
	)

	// Mode-label pill, title, date caption.
	fmt.Fprintf(&b, `  <rect x="%d" y="148" width="286" height="48" rx="24" fill="#fffdf9" stroke="#d8ccbf" stroke-opacity="0.62"/>
  <text x="%d" y="180" font-size="26" fill="#6c5f50" font-family="%s">%s</text>
  <text x="%d" y="302" font-size="64" font-weight="600" fill="%s" font-family="%s">%s</text>
  <text x="%d" y="374" font-size="26" fill="#6f6252" fill-opacity="0.88" font-family="%s">日期：%s · %s</text>
`,
		padding,
		padding+24, paperFontStack, Escape(p.ModeLabel),
		padding, Escape(p.Accent), paperFontStack, Escape(p.Title),
		padding, paperFontStack, Escape(p.LunarDate), Escape(p.SolarDate),
	)

	if badge := decisionBadgeText(p.Decision); badge != "" {
		fmt.Fprintf(&b, `  <rect x="%d" y="404" width="168" height="64" rx="32" fill="%s" fill-opacity="0.92"/>
  <text x="%d" y="448" font-size="34" font-weight="600" fill="#ffffff" font-family="%s">%s</text>
`,
			padding, Escape(p.Accent),
			padding+42, paperFontStack, badge,
		)
	}

	const textStartY = 520
	const lineGap = 72
	for i, line := range bodyLines(p) {
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-size="41" fill="#4c4439" font-family="%s">%s</text>
`,
			padding, textStartY+i*lineGap, paperFontStack, Escape(line))
	}

	fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#d8ccbf" stroke-opacity="0.88" />
  <text x="%d" y="%d" font-size="24" fill="#6f6252" fill-opacity="0.84" font-family="%s">抽签时间：%s</text>
  <text x="%d" y="%d" font-size="24" fill="#6f6252" fill-opacity="0.84" font-family="%s">来源：%s</text>
</svg>`,
		padding, CanvasHeight-340, CanvasWidth-padding, CanvasHeight-340,
		padding, CanvasHeight-270, paperFontStack, Escape(p.Timestamp),
		padding, CanvasHeight-220, paperFontStack, Escape(p.Source),
	)

	return b.String()
}

func buildTerminalCard(p card.SharePayload) string {
	cardW := CanvasWidth - 140
	cardH := CanvasHeight - 140

	var b strings.Builder
	// crispEdges: the terminal skin wants hard pixel boundaries; the
	// rasterizer must not smooth them away.
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
  <rect width="%d" height="%d" fill="#09090b" />
  <rect x="%d" y="%d" width="%d" height="%d" fill="#09090b" stroke="#a3e635" stroke-width="4"/>
  <rect x="%d" y="%d" width="%d" height="%d" fill="#111827" stroke="#3f3f46" stroke-width="2"/>
  <rect x="%d" y="136" width="316" height="52" fill="#0a0a0a" stroke="#a3e635" stroke-width="3"/>
  <text x="%d" y="171" font-size="28" fill="#bef264" font-family="%s">%s</text>
  <text x="%d" y="302" font-size="62" font-weight="700" fill="#d9f99d" font-family="%s">%s</text>
  <text x="%d" y="370" font-size="24" fill="#a1a1aa" font-family="%s">日期：%s · %s</text>
`,
		CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight,
		CanvasWidth, CanvasHeight,
		cardX, cardY, cardW, cardH,
		cardX+20, cardY+20, cardW-40, cardH-40,
		padding,
		padding+18, terminalFontStack, Escape(p.ModeLabel),
		padding, terminalFontStack, Escape(p.Title),
		padding, terminalFontStack, Escape(p.LunarDate), Escape(p.SolarDate),
	)

	if badge := decisionBadgeText(p.Decision); badge != "" {
		fmt.Fprintf(&b, `  <rect x="%d" y="400" width="160" height="60" fill="#0a0a0a" stroke="#a3e635" stroke-width="3"/>
  <text x="%d" y="441" font-size="32" font-weight="700" fill="#bef264" font-family="%s">[%s]</text>
`,
			padding,
			padding+24, terminalFontStack, badge,
		)
	}

	const textStartY = 520
	const lineGap = 70
	for i, line := range bodyLines(p) {
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-size="38" fill="#f4f4f5" font-family="%s">&gt; %s</text>
`,
			padding, textStartY+i*lineGap, terminalFontStack, Escape(line))
	}

	fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#3f3f46" />
  <text x="%d" y="%d" font-size="24" fill="#a1a1aa" font-family="%s">抽签时间：%s</text>
  <text x="%d" y="%d" font-size="24" fill="#a1a1aa" font-family="%s">来源：%s</text>
</svg>`,
		padding, CanvasHeight-340, CanvasWidth-padding, CanvasHeight-340,
		padding, CanvasHeight-270, terminalFontStack, Escape(p.Timestamp),
		padding, CanvasHeight-220, terminalFontStack, Escape(p.Source),
	)

	return b.String()
}
