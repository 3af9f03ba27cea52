package navigation

import "strings"

// Styles names the class hooks the external stylesheet provides. The core
// only emits these names; it never defines how they look.
type Styles struct {
	Screen           string
	Overlay          string
	Content          string
	Nav              string
	NavItem          string
	NavItemHighlight string
	NavItemAccent    string
	Word             string
	WordSR           string
	Letters          string
	LetterClip       string
	LetterWrapper    string
	Letter           string
	LetterHighlight  string
	Brandmark        string
	Laurel           string
	BrandText        string
}

func DefaultStyles() Styles {
	return Styles{
		Screen:           "screen",
		Overlay:          "overlay",
		Content:          "content",
		Nav:              "nav",
		NavItem:          "nav-item",
		NavItemHighlight: "nav-item--highlight",
		NavItemAccent:    "nav-item--accent",
		Word:             "word",
		WordSR:           "word-sr",
		Letters:          "letters",
		LetterClip:       "letter-clip",
		LetterWrapper:    "letter-wrapper",
		Letter:           "letter",
		LetterHighlight:  "letter--highlight",
		Brandmark:        "brandmark",
		Laurel:           "laurel",
		BrandText:        "brand-text",
	}
}

// WithPrefix returns a copy with every hook prefixed, e.g. "animated-nav__".
func (s Styles) WithPrefix(prefix string) Styles {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return s
	}

	hooks := []*string{
		&s.Screen, &s.Overlay, &s.Content, &s.Nav,
		&s.NavItem, &s.NavItemHighlight, &s.NavItemAccent,
		&s.Word, &s.WordSR, &s.Letters,
		&s.LetterClip, &s.LetterWrapper, &s.Letter, &s.LetterHighlight,
		&s.Brandmark, &s.Laurel, &s.BrandText,
	}
	for _, hook := range hooks {
		if *hook != "" {
			*hook = prefix + *hook
		}
	}
	return s
}

// ItemClass joins the control classes selected by the item's flags.
func (s Styles) ItemClass(item Item) string {
	classes := []string{s.NavItem}
	if item.Highlight {
		classes = append(classes, s.NavItemHighlight)
	}
	if item.Accent {
		classes = append(classes, s.NavItemAccent)
	}
	return joinClasses(classes...)
}

// HighlightLetterClass is the class of the second, highlighted letter copy.
func (s Styles) HighlightLetterClass() string {
	return joinClasses(s.Letter, s.LetterHighlight)
}

func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
