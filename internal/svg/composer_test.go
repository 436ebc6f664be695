package svg_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/youruser/fortunecard/internal/card"
	"github.com/youruser/fortunecard/internal/fortune"
	"github.com/youruser/fortunecard/internal/svg"
)

func samplePayload() card.SharePayload {
	return card.SharePayload{
		ModeLabel:   "🎐 传统签",
		Title:       "路通",
		Lines:       []string{"这条路是通的。慢一点也没关系。"},
		Favorable:   []string{"出行", "开工"},
		Unfavorable: []string{"反复确认"},
		LunarDate:   "大年初一",
		SolarDate:   "2024-02-10",
		Timestamp:   "2024-02-10 08:30:00",
		Source:      "🐱 第 5 次抽签",
		Accent:      "#E37970",
		SoftSurface: "#fbeae8",
	}
}

func TestEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{`a&b`, "a&amp;b"},
		{`<text>`, "&lt;text&gt;"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{`it's`, "it&apos;s"},
		{`plain 汉字`, "plain 汉字"},
	}
	for _, c := range cases {
		if got := svg.Escape(c.in); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWrapRunes(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  []string
	}{
		{"", 19, []string{""}},
		{"短句", 19, []string{"短句"}},
		{strings.Repeat("字", 19), 19, []string{strings.Repeat("字", 19)}},
		{strings.Repeat("字", 20), 19, []string{strings.Repeat("字", 19), "字"}},
		{strings.Repeat("字", 40), 19, []string{strings.Repeat("字", 19), strings.Repeat("字", 19), "字字"}},
	}
	for _, c := range cases {
		got := svg.WrapRunes(c.in, c.width)
		if len(got) != len(c.want) {
			t.Errorf("WrapRunes(%d runes): got %d chunks, want %d", len([]rune(c.in)), len(got), len(c.want))
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("chunk %d: got %q, want %q", i, got[i], c.want[i])
			}
		}
	}
}

func TestWrapRunes_CodePointsNotBytes(t *testing.T) {
	// 3 bytes per rune; byte-level wrapping would split mid-character.
	got := svg.WrapRunes("一二三四五", 2)
	want := []string{"一二", "三四", "五"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBuildVectorCard_EscapesUserText(t *testing.T) {
	p := samplePayload()
	p.Title = `<script>"攻&击'`
	p.Lines = []string{`1 < 2 & 3 > 0`}

	for _, skin := range []card.Skin{card.SkinPaper, card.SkinTerminal} {
		doc := svg.BuildVectorCard(p, skin)
		// No raw markup characters may survive inside text nodes.
		textRe := regexp.MustCompile(`<text[^>]*>([^<]*)</text>`)
		for _, m := range textRe.FindAllStringSubmatch(doc, -1) {
			body := m[1]
			for _, bad := range []string{"<script", `"`, "'"} {
				if strings.Contains(body, bad) {
					t.Errorf("%s skin: unescaped %q in text node %q", skin, bad, body)
				}
			}
		}
		if strings.Contains(doc, "<script") {
			t.Errorf("%s skin: raw script tag survived", skin)
		}
	}
}

func TestBuildVectorCard_PaperSkin(t *testing.T) {
	doc := svg.BuildVectorCard(samplePayload(), card.SkinPaper)

	for _, want := range []string{
		`width="1080" height="1920"`,
		`rx="38"`,
		`#faf5ec`,
		`#fbeae8`,
		`#E37970`,
		"宜：出行 / 开工",
		"忌：反复确认",
		"抽签时间：2024-02-10 08:30:00",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("paper card missing %q", want)
		}
	}
	if strings.Contains(doc, "crispEdges") {
		t.Error("paper skin must not use crisp edges")
	}
}

func TestBuildVectorCard_TerminalSkin(t *testing.T) {
	p := samplePayload()
	p.Decision = fortune.DecisionYes
	doc := svg.BuildVectorCard(p, card.SkinTerminal)

	for _, want := range []string{
		`shape-rendering="crispEdges"`,
		`#09090b`,
		`#a3e635`,
		"[YES]",
		"&gt; ",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("terminal card missing %q", want)
		}
	}
	if strings.Contains(doc, `rx="38"`) {
		t.Error("terminal skin must not have rounded corners")
	}
}

func TestBuildVectorCard_LongBodyWrapsAt19(t *testing.T) {
	p := samplePayload()
	p.Favorable = nil
	p.Unfavorable = nil
	p.Lines = []string{strings.Repeat("勉", 40)}
	doc := svg.BuildVectorCard(p, card.SkinPaper)

	if !strings.Contains(doc, strings.Repeat("勉", 19)) {
		t.Error("expected a full 19-character chunk")
	}
	if strings.Contains(doc, strings.Repeat("勉", 20)) {
		t.Error("a body line exceeded 19 code points")
	}
}
