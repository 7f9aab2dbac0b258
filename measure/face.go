package measure

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	defaultFaceSize = 12
	defaultFaceDPI  = 72
)

type faceKey struct {
	size   int64 // size in 1/1000 pt
	bold   bool
	italic bool
}

// Face measures glyph advances of the Go font family in device pixels.
//
// Faces are created lazily per Style and cached. Runs are measured with
// font.MeasureString, so kerning between neighbours is included; single
// characters use the glyph advance alone. A glyph missing from the face
// (tab included) measures as a space.
type Face struct {
	dpi   float64
	fonts [4]*opentype.Font // regular, bold, italic, bold italic
	cache map[faceKey]font.Face
}

// NewFace parses the embedded Go fonts. dpi <= 0 uses 72.
func NewFace(dpi float64) (*Face, error) {
	if dpi <= 0 {
		dpi = defaultFaceDPI
	}
	f := &Face{dpi: dpi, cache: map[faceKey]font.Face{}}
	for i, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		parsed, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse go font %d: %w", i, err)
		}
		f.fonts[i] = parsed
	}
	return f, nil
}

func (f *Face) MeasureRun(text []rune, start, end int, st Style) float64 {
	start, end = clampRun(text, start, end)
	if start == end {
		return 0
	}
	face := f.face(st)
	run := text[start:end]
	for i, r := range run {
		if !hasGlyph(face, r) {
			// Substitute missing glyphs so the run and per-char paths agree.
			cp := make([]rune, len(run))
			copy(cp, run)
			for j := i; j < len(cp); j++ {
				if !hasGlyph(face, cp[j]) {
					cp[j] = ' '
				}
			}
			run = cp
			break
		}
	}
	return fixedToFloat(font.MeasureString(face, string(run)))
}

func (f *Face) MeasureChar(ch rune, st Style) float64 {
	face := f.face(st)
	if !hasGlyph(face, ch) {
		ch = ' '
	}
	adv, _ := face.GlyphAdvance(ch)
	return fixedToFloat(adv)
}

func hasGlyph(face font.Face, r rune) bool {
	if r == '\t' {
		return false
	}
	_, ok := face.GlyphAdvance(r)
	return ok
}

func (f *Face) face(st Style) font.Face {
	size := st.Size
	if size <= 0 {
		size = defaultFaceSize
	}
	key := faceKey{size: int64(math.Round(size * 1000)), bold: st.Bold, italic: st.Italic}
	if face, ok := f.cache[key]; ok {
		return face
	}

	idx := 0
	switch {
	case st.Bold && st.Italic:
		idx = 3
	case st.Italic:
		idx = 2
	case st.Bold:
		idx = 1
	}
	base := f.fonts[idx]
	if base == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(base, &opentype.FaceOptions{
		Size:    size,
		DPI:     f.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	f.cache[key] = face
	return face
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Bitmap measures with basicfont.Face7x13: every glyph advances 7 pixels.
// It needs no font parsing, which makes it the cheapest pixel engine.
type Bitmap struct{}

func (Bitmap) MeasureRun(text []rune, start, end int, st Style) float64 {
	return SumChars(Bitmap{}, text, start, end, st)
}

func (Bitmap) MeasureChar(ch rune, st Style) float64 {
	adv, ok := basicfont.Face7x13.GlyphAdvance(ch)
	if !ok {
		adv = fixed.I(basicfont.Face7x13.Advance)
	}
	return fixedToFloat(adv)
}
