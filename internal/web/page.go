// Package web serves the embedded dashboard page. All data comes from the
// JSON API; the page itself is static.
package web

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Title string
}

// Page returns the handler for the dashboard page.
func Page(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTmpl.Execute(w, pageData{Title: title}); err != nil {
			slog.Error("render page", "error", err)
		}
	}
}
