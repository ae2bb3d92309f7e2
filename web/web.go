// Package web embeds the server-rendered page templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the full template set. Template names are file base
// names, e.g. "home.tmpl".
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}
