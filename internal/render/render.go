// Package render turns navigation menus into HTML markup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"animated-nav/pkg/navigation"
	"animated-nav/pkg/utils"
)

const (
	navTemplate    = "animated-nav"
	layoutTemplate = "base.html"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// PageData is the host layout around the menu fragment.
type PageData struct {
	Title      string
	Language   string
	Stylesheet string
	Nav        template.HTML
}

type Renderer struct {
	templates *template.Template
}

// DefaultTemplates returns the templates compiled into the binary.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// New parses the templates in fsys. A nil fsys selects DefaultTemplates.
func New(fsys fs.FS, assetModTime utils.AssetModTimeFunc) (*Renderer, error) {
	if fsys == nil {
		fsys = DefaultTemplates()
	}

	templates, err := utils.LoadTemplates(fsys, utils.GetTemplateFuncs(assetModTime))
	if err != nil {
		return nil, err
	}

	for _, name := range []string{navTemplate, layoutTemplate} {
		if templates.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q not defined", name)
		}
	}

	return &Renderer{templates: templates}, nil
}

// Nav renders menu as a self-contained fragment.
func (r *Renderer) Nav(menu navigation.Menu) (template.HTML, error) {
	buf, err := r.execute(navTemplate, menu)
	if err != nil {
		return "", fmt.Errorf("render navigation: %w", err)
	}
	return template.HTML(buf), nil
}

// Page renders the full document layout.
func (r *Renderer) Page(data PageData) ([]byte, error) {
	buf, err := r.execute(layoutTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf, nil
}

func (r *Renderer) execute(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
