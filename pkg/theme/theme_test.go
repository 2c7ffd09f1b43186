package theme

import (
	"testing"

	"github.com/ha1tch/nodekit/pkg/nodegraph"
)

func TestParseOverridesBasePalette(t *testing.T) {
	data := []byte(`
name = "midnight"
base = "dark"
link = "#ff0000"
grid_background = "#10203040"
`)
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "midnight" {
		t.Errorf("Name = %q", th.Name)
	}

	link := th.Colors[nodegraph.ColorLink]
	if link.R != 255 || link.G != 0 || link.B != 0 || link.A != 255 {
		t.Errorf("link = %v, want opaque red", link)
	}

	bg := th.Colors[nodegraph.ColorGridBackground]
	if bg.R != 0x10 || bg.G != 0x20 || bg.B != 0x30 || bg.A != 0x40 {
		t.Errorf("grid background = %v, want #10203040", bg)
	}

	// Untouched entries keep the base palette
	dark := nodegraph.ColorsDark()
	if th.Colors[nodegraph.ColorPin] != dark[nodegraph.ColorPin] {
		t.Error("unset entries should fall back to the base palette")
	}
}

func TestParseDerivesHoverVariants(t *testing.T) {
	data := []byte(`
link = "#2040c0"
`)
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	base := th.Colors[nodegraph.ColorLink]
	hovered := th.Colors[nodegraph.ColorLinkHovered]
	if hovered == base {
		t.Error("hovered variant should differ from the base color")
	}
	// Derived variants lighten, never darken
	if int(hovered.R)+int(hovered.G)+int(hovered.B) <= int(base.R)+int(base.G)+int(base.B) {
		t.Errorf("hovered %v should be lighter than base %v", hovered, base)
	}
	if hovered.A != base.A {
		t.Errorf("derived variant changed alpha: %d != %d", hovered.A, base.A)
	}
}

func TestParseExplicitVariantNotOverwritten(t *testing.T) {
	data := []byte(`
link = "#2040c0"
link_hovered = "#ffffff"
`)
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	h := th.Colors[nodegraph.ColorLinkHovered]
	if h.R != 255 || h.G != 255 || h.B != 255 {
		t.Errorf("explicit hovered color replaced by derivation: %v", h)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse([]byte(`base = "neon"`)); err == nil {
		t.Error("unknown base palette should fail")
	}
	if _, err := Parse([]byte(`link = "notacolor"`)); err == nil {
		t.Error("malformed color should fail")
	}
	if _, err := Parse([]byte(`link = `)); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestBasePalettes(t *testing.T) {
	for _, base := range []string{"dark", "classic", "light", ""} {
		f := File{Base: base}
		if _, err := f.Resolve(); err != nil {
			t.Errorf("base %q failed: %v", base, err)
		}
	}
}

func TestApply(t *testing.T) {
	th, err := Parse([]byte(`link = "#ff0000"`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	s := nodegraph.DefaultStyle()
	th.Apply(&s)
	if s.Colors[nodegraph.ColorLink].R != 255 || s.Colors[nodegraph.ColorLink].G != 0 {
		t.Errorf("Apply did not copy the link color: %v", s.Colors[nodegraph.ColorLink])
	}
}
