// Package web holds the HTML templates compiled into the binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	html "github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// Engine returns the view engine. With dir empty the embedded templates are
// used; otherwise templates are read from dir and reloaded on every render.
func Engine(dir string) *html.Engine {
	if dir != "" {
		engine := html.New(dir, ".html")
		engine.Reload(true)
		return engine
	}
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
