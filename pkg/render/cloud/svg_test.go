package cloud

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/wordscatter/pkg/scatter"
)

func testConfig() scatter.Config {
	return scatter.Config{Width: 400, Height: 300, FontSize: 20}
}

func testPlacements() []scatter.Placement {
	return []scatter.Placement{
		{Text: "sun", X: 100, Y: 50, Rotation: 10, Box: scatter.Rect{X: 70, Y: 30, W: 60, H: 34}},
		{Text: "moon", X: 250, Y: 150, Rotation: -5, Box: scatter.Rect{X: 210, Y: 130, W: 80, H: 34}},
	}
}

func TestRenderSVGStructure(t *testing.T) {
	out := string(RenderSVG(testPlacements(), testConfig()))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400.0 300.0"`) {
		t.Errorf("unexpected SVG header: %s", out[:min(len(out), 120)])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("missing closing tag")
	}
	if got := strings.Count(out, "<text"); got != 2 {
		t.Errorf("got %d text elements, want 2", got)
	}
	if !strings.Contains(out, `fill="#ffffff"`) {
		t.Error("missing default white background")
	}
	if !strings.Contains(out, ">sun</text>") || !strings.Contains(out, ">moon</text>") {
		t.Error("token text missing from output")
	}
	if !strings.Contains(out, `transform="rotate(10.00 100.00 50.00)"`) {
		t.Error("rotation transform missing or not pivoting on the anchor")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	out := string(RenderSVG(testPlacements(), testConfig(),
		WithBackground("#000088"),
		WithFontFamily("Comic Sans MS"),
		WithTextColor("#ff0000"),
		WithBoxes(),
	))

	if !strings.Contains(out, `fill="#000088"`) {
		t.Error("background option ignored")
	}
	if !strings.Contains(out, `font-family="Comic Sans MS"`) {
		t.Error("font family option ignored")
	}
	if !strings.Contains(out, `fill="#ff0000"`) {
		t.Error("text color option ignored")
	}
	// Two debug boxes plus the background rect.
	if got := strings.Count(out, "<rect"); got != 3 {
		t.Errorf("got %d rect elements, want 3 with boxes enabled", got)
	}
}

func TestRenderSVGEscaping(t *testing.T) {
	placements := []scatter.Placement{
		{Text: `<b>&"fish"</b>`, X: 10, Y: 10},
	}
	out := string(RenderSVG(placements, testConfig()))

	if strings.Contains(out, "<b>") {
		t.Error("markup leaked into output unescaped")
	}
	for _, want := range []string{"&lt;b&gt;", "&amp;", "&#34;"} {
		if !strings.Contains(out, want) {
			t.Errorf("escaped output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	out := RenderSVG(nil, testConfig())
	if !bytes.Contains(out, []byte("<svg")) || !bytes.Contains(out, []byte("</svg>")) {
		t.Error("empty layout should still be a valid document")
	}
	if bytes.Contains(out, []byte("<text")) {
		t.Error("empty layout should render no text")
	}
}
