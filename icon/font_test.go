package icon

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFaceFallsBackToDefault(t *testing.T) {
	missing := []string{"/no/such/Helvetica.ttc", "/no/such/SFNSMono.ttf"}

	face, src := LoadFace(missing, BadgeFontSize)
	if src != DefaultFontName {
		t.Errorf("source = %q, want %q", src, DefaultFontName)
	}
	if face != basicfont.Face7x13 {
		t.Errorf("face = %T, want basicfont.Face7x13", face)
	}
}

func TestLoadFaceNoCandidates(t *testing.T) {
	_, src := LoadFace(nil, BadgeFontSize)
	if src != DefaultFontName {
		t.Errorf("source = %q, want %q", src, DefaultFontName)
	}
}

func TestLoadFaceSkipsUnparsable(t *testing.T) {
	junk := writeFont(t, "junk.ttf", []byte("not a font"))
	good := writeFont(t, "goregular.ttf", goregular.TTF)

	face, src := LoadFace([]string{junk, good}, BadgeFontSize)
	defer face.Close()
	if src != good {
		t.Fatalf("source = %q, want %q", src, good)
	}
	// 40px text is far taller than the 13px fallback.
	if h := face.Metrics().Height.Ceil(); h < 40 {
		t.Errorf("line height = %d, want >= 40", h)
	}
}

func TestLoadFacePrefersFirst(t *testing.T) {
	first := writeFont(t, "a.ttf", goregular.TTF)
	second := writeFont(t, "b.ttf", goregular.TTF)

	face, src := LoadFace([]string{first, second}, BadgeFontSize)
	defer face.Close()
	if src != first {
		t.Errorf("source = %q, want %q", src, first)
	}
}

func TestCenterTextInBadge(t *testing.T) {
	good := writeFont(t, "goregular.ttf", goregular.TTF)
	regular, _ := LoadFace([]string{good}, BadgeFontSize)
	defer regular.Close()

	for name, f := range map[string]font.Face{
		"default": basicfont.Face7x13,
		"regular": regular,
	} {
		box := BadgeRect()
		dot := CenterText(f, BadgeText, box)
		ink := MeasureText(f, BadgeText).Add(dot)

		if !ink.In(box) {
			t.Errorf("%s: ink %v not inside badge %v", name, ink, box)
			continue
		}
		left, right := ink.Min.X-box.Min.X, box.Max.X-ink.Max.X
		top, bottom := ink.Min.Y-box.Min.Y, box.Max.Y-ink.Max.Y
		if d := left - right; d < -1 || d > 1 {
			t.Errorf("%s: horizontal margins %d/%d not centered", name, left, right)
		}
		if d := top - bottom; d < -1 || d > 1 {
			t.Errorf("%s: vertical margins %d/%d not centered", name, top, bottom)
		}
	}
}

func TestMeasureTextEmpty(t *testing.T) {
	if r := MeasureText(basicfont.Face7x13, ""); r != (image.Rectangle{}) {
		t.Errorf("MeasureText(\"\") = %v, want empty", r)
	}
}
