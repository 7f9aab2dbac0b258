package measure

type charKey struct {
	ch    rune
	style Style
}

// Cache memoizes MeasureChar of an underlying engine per (character, style).
//
// Runs are delegated unchanged so engines with kerning keep it. Cache is not
// safe for concurrent use.
type Cache struct {
	m     Measurer
	chars map[charKey]float64
}

func NewCache(m Measurer) *Cache {
	return &Cache{m: m, chars: map[charKey]float64{}}
}

func (c *Cache) MeasureRun(text []rune, start, end int, st Style) float64 {
	return c.m.MeasureRun(text, start, end, st)
}

func (c *Cache) MeasureChar(ch rune, st Style) float64 {
	k := charKey{ch: ch, style: st}
	if w, ok := c.chars[k]; ok {
		return w
	}
	w := c.m.MeasureChar(ch, st)
	c.chars[k] = w
	return w
}

// Len returns the number of memoized character widths.
func (c *Cache) Len() int { return len(c.chars) }

// Reset drops all memoized widths, e.g. after the engine's fonts change.
func (c *Cache) Reset() { clear(c.chars) }
