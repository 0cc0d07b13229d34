package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates parses the page templates.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templates, "templates/*.html")
}

// Static returns the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
