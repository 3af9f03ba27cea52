package navigation

import (
	"strconv"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

const (
	// DefaultStagger is the delay added per letter position.
	DefaultStagger = 50 * time.Millisecond

	NonBreakingSpace = "\u00a0"
	space            = " "
)

// Letter is one user-perceived character of a label. Text is the literal
// grapheme cluster, Glyph is what the decorative copy shows.
type Letter struct {
	Index int
	Text  string
	Glyph string
	Delay time.Duration
}

// DelaySeconds returns the stagger offset in seconds.
func (l Letter) DelaySeconds() float64 {
	return l.Delay.Seconds()
}

// CSSDelay formats the delay as a CSS time value, e.g. "0.15s".
func (l Letter) CSSDelay() string {
	return strconv.FormatFloat(l.DelaySeconds(), 'f', -1, 64) + "s"
}

// IsSpace reports whether the letter was a U+0020 space in the label.
func (l Letter) IsSpace() bool {
	return l.Text == space
}

// Word is a label split for per-letter animation. Text is the accessible
// twin and always equals the decomposed input.
type Word struct {
	Text    string
	Letters []Letter
}

func (w Word) Len() int {
	return len(w.Letters)
}

func (w Word) Empty() bool {
	return len(w.Letters) == 0
}

// Reassemble joins the literal letter texts back into the original label.
func (w Word) Reassemble() string {
	var b strings.Builder
	b.Grow(len(w.Text))
	for _, letter := range w.Letters {
		b.WriteString(letter.Text)
	}
	return b.String()
}

// Decompose splits text into grapheme clusters staggered by DefaultStagger.
func Decompose(text string) Word {
	return DecomposeStagger(text, DefaultStagger)
}

// DecomposeStagger is Decompose with a custom per-letter step. A step of zero
// or less falls back to DefaultStagger.
func DecomposeStagger(text string, step time.Duration) Word {
	if step <= 0 {
		step = DefaultStagger
	}

	word := Word{Text: text}
	if text == "" {
		return word
	}

	word.Letters = make([]Letter, 0, uniseg.GraphemeClusterCount(text))
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		index := len(word.Letters)
		word.Letters = append(word.Letters, Letter{
			Index: index,
			Text:  cluster,
			Glyph: glyphFor(cluster),
			Delay: time.Duration(index) * step,
		})
	}

	return word
}

// GlyphText maps a decorative glyph back to its literal text.
func GlyphText(glyph string) string {
	if glyph == NonBreakingSpace {
		return space
	}
	return glyph
}

func glyphFor(cluster string) string {
	if cluster == space {
		return NonBreakingSpace
	}
	return cluster
}
