// Package web holds the HTML templates and the renderer gin uses to execute them.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var Assets embed.FS

// Pages are the page templates rendered on top of base.html.
var Pages = []string{"index.html", "add_cafe.html", "admin_login.html", "error.html"}

var funcMap = template.FuncMap{
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
}

// Renderer executes one page template inside the shared layout.
// Each page is parsed into its own clone of the base so their blocks do not collide.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(Assets, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("web: failed to parse base template: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(Pages))}
	for _, name := range Pages {
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("web: failed to clone base template: %w", err)
		}
		if page, err = page.ParseFS(Assets, "templates/"+name); err != nil {
			return nil, fmt.Errorf("web: failed to parse %s: %w", name, err)
		}
		r.pages[name] = page
	}

	return r, nil
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	page, ok := r.pages[name]
	if !ok {
		page = r.pages["error.html"]
		data = map[string]any{"Status": 500, "Message": "Something went wrong."}
	}
	return render.HTML{Template: page, Name: "base.html", Data: data}
}
