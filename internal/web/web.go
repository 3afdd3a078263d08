package web

import (
	"embed"
	"html/template"

	"gitlab.com/golang-commonmark/markdown"
)

//go:embed templates
var templateFS embed.FS

// raw HTML inside news bodies is escaped, not passed through
var markdownParser = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// RenderMarkdown turns a CommonMark body into safe HTML.
func RenderMarkdown(src string) template.HTML {
	return template.HTML(markdownParser.RenderToString([]byte(src)))
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": RenderMarkdown,
		"date": func(layout string, v interface{ Format(string) string }) string {
			return v.Format(layout)
		},
	}
}

// Templates parses every embedded page. Pages are addressed by the name in
// their define block, e.g. "blog/news_list.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS,
		"templates/layout/*.html",
		"templates/errors/*.html",
		"templates/blog/*.html",
		"templates/blog/snippets/*.html",
	)
}

// MustTemplates is Templates for program start-up and tests.
func MustTemplates() *template.Template {
	t, err := Templates()
	if err != nil {
		panic(err)
	}
	return t
}
