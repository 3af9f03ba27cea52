package navigation

import "time"

const (
	DefaultAriaLabel = "Primary"
	DefaultBrandMark = "⚭"
	DefaultBrandText = "Hover animation menu"
)

// Options controls how a Menu is built from registry items. Zero values fall
// back to the defaults.
type Options struct {
	Styles    Styles
	Stagger   time.Duration
	AriaLabel string
	Brand     Brand
}

type Brand struct {
	Mark string
	Text string
}

// Entry is the render-ready form of one Item.
type Entry struct {
	Item  Item
	Class string
	Word  Word
}

// Menu is the complete view model for one render pass.
type Menu struct {
	AriaLabel string
	Entries   []Entry
	Brand     Brand
	Styles    Styles
}

// Build derives a fresh Menu from items. It has no side effects and does not
// retain items.
func Build(items []Item, opts Options) Menu {
	opts = opts.WithDefaults()

	menu := Menu{
		AriaLabel: opts.AriaLabel,
		Brand:     opts.Brand,
		Styles:    opts.Styles,
		Entries:   make([]Entry, 0, len(items)),
	}

	for _, item := range items {
		menu.Entries = append(menu.Entries, Entry{
			Item:  item,
			Class: opts.Styles.ItemClass(item),
			Word:  DecomposeStagger(item.Label, opts.Stagger),
		})
	}

	return menu
}

// WithDefaults fills every zero field with its default.
func (o Options) WithDefaults() Options {
	if o.Styles == (Styles{}) {
		o.Styles = DefaultStyles()
	}
	if o.Stagger <= 0 {
		o.Stagger = DefaultStagger
	}
	if o.AriaLabel == "" {
		o.AriaLabel = DefaultAriaLabel
	}
	if o.Brand == (Brand{}) {
		o.Brand = Brand{Mark: DefaultBrandMark, Text: DefaultBrandText}
	}
	return o
}
