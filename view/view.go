// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/danielhkuo/popvote/figure"
)

//go:embed templates/*.html
var templateFS embed.FS

// headerCellClasses is the fixed padding every table header cell gets
const headerCellClasses = "px-4 py-2"

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"th":         TH,
	"classnames": ClassNames,
}).ParseFS(templateFS, "templates/*.html"))

// ClassNames merges space-separated class lists, dropping blanks and duplicates
func ClassNames(classes ...string) string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range classes {
		for _, c := range strings.Fields(list) {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

// TH renders a table header cell with the standard padding plus any extra classes
func TH(content string, classes ...string) template.HTML {
	class := ClassNames(append([]string{headerCellClasses}, classes...)...)
	return template.HTML(`<th class="` + template.HTMLEscapeString(class) + `">` + template.HTMLEscapeString(content) + `</th>`)
}

// RenderFigure writes the figure section only
func RenderFigure(w io.Writer, v figure.View) error {
	return templates.ExecuteTemplate(w, "figure.html", v)
}

// RenderPage writes a standalone HTML page around the figure section
func RenderPage(w io.Writer, v figure.View) error {
	return templates.ExecuteTemplate(w, "page.html", v)
}
