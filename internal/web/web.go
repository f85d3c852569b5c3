// Package web embeds the dashboard templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/BerylCAtieno/gumroad-profiler/internal/render"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates parses the embedded templates with the helpers they use.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"fontFamily": render.FontFamily,
		"inc":        func(i int) int { return i + 1 },
		"dict":       dict,
	}).ParseFS(templateFiles, "templates/*.tmpl")
}

// Static returns the asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// dict builds a map from alternating keys and values so a sub-template can take several arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict needs an even number of arguments, got %d", len(pairs))
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
