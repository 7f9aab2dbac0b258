package measure

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Vector measures with tdewolff/canvas outline metrics.
//
// Widths are in millimetres, the canvas user unit, and are not snapped to
// a pixel grid. Style.Size is in points.
type Vector struct {
	family *canvas.FontFamily
	faces  map[faceKey]*canvas.FontFace
}

// NewVector loads the Go font family into a canvas font family.
func NewVector() (*Vector, error) {
	family := canvas.NewFontFamily("go")
	fonts := []struct {
		ttf   []byte
		style canvas.FontStyle
	}{
		{goregular.TTF, canvas.FontRegular},
		{gobold.TTF, canvas.FontBold},
		{goitalic.TTF, canvas.FontItalic},
		{gobolditalic.TTF, canvas.FontBold | canvas.FontItalic},
	}
	for _, f := range fonts {
		if err := family.LoadFont(f.ttf, 0, f.style); err != nil {
			return nil, fmt.Errorf("load go font into canvas family: %w", err)
		}
	}
	return &Vector{family: family, faces: map[faceKey]*canvas.FontFace{}}, nil
}

func (v *Vector) MeasureRun(text []rune, start, end int, st Style) float64 {
	start, end = clampRun(text, start, end)
	if start == end {
		return 0
	}
	return v.face(st).TextWidth(string(text[start:end]))
}

func (v *Vector) MeasureChar(ch rune, st Style) float64 {
	if ch == '\t' {
		ch = ' '
	}
	return v.face(st).TextWidth(string(ch))
}

func (v *Vector) face(st Style) *canvas.FontFace {
	size := st.Size
	if size <= 0 {
		size = defaultFaceSize
	}
	key := faceKey{size: int64(math.Round(size * 1000)), bold: st.Bold, italic: st.Italic}
	if face, ok := v.faces[key]; ok {
		return face
	}

	style := canvas.FontRegular
	if st.Bold {
		style = canvas.FontBold
	}
	if st.Italic {
		style |= canvas.FontItalic
	}
	face := v.family.Face(size, color.Black, style, canvas.FontNormal)
	v.faces[key] = face
	return face
}
