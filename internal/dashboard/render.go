package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/russross/blackfriday/v2"
)

//go:embed templates/*.html content/*.md
var content embed.FS

// Renderer holds the parsed page template and the sidebar markdown, which is
// converted to HTML once.
type Renderer struct {
	tmpl    *template.Template
	sidebar template.HTML
}

type pageData struct {
	Page
	Sidebar     template.HTML
	ChartHeight int
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
	}).ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	md, err := content.ReadFile("content/sidebar.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read sidebar: %w", err)
	}

	return &Renderer{
		tmpl:    tmpl,
		sidebar: RenderMarkdown(md),
	}, nil
}

// RenderMarkdown converts trusted, embedded markdown to HTML.
func RenderMarkdown(md []byte) template.HTML {
	return template.HTML(blackfriday.Run(md))
}

func (r *Renderer) Render(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", pageData{
		Page:        p,
		Sidebar:     r.sidebar,
		ChartHeight: CHART_HEIGHT,
	})
}
