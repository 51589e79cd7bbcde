package handler

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/web"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

func parsePages() (*template.Template, error) {
	funcs := template.FuncMap{
		// price renders whole dollars with thousands separators: 2499 -> "2,499".
		"price": func(dollars int) string {
			return pricePrinter.Sprintf("%d", dollars)
		},
		"selected": domain.Selected,
	}
	return template.New("pages").Funcs(funcs).ParseFS(web.Templates, "templates/*.html")
}

// render executes the named page into a buffer first so a template error
// never leaves a half-written response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.ErrorContext(r.Context(), "render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(web.Static, "static")
	if err != nil {
		// web.Static is embedded with a static/ root, so this cannot happen.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
