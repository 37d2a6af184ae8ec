package httpserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"staybook/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "detail", "storyboard"}

func itoa(n int) string { return strconv.Itoa(n) }

var templateFuncs = template.FuncMap{
	"money":   func(v float64) string { return "$" + strconv.FormatFloat(math.Round(v), 'f', 0, 64) },
	"dollars": func(v int) string { return "$" + strconv.Itoa(v) },
	"rating":  func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
	"stars": func(n int) []bool {
		out := make([]bool, 5)
		for i := range out {
			out[i] = i < n
		}
		return out
	},
	"inc":        func(n int) int { return n + 1 },
	"reviewDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	"guestLabel": app.GuestLabel,
	"join":       strings.Join,
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// renderer holds one template set per page: the shared layout and partials
// plus the page's own "content" block.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	base, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	rd := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		rd.pages[name] = t
	}
	return rd, nil
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (rd *renderer) render(w http.ResponseWriter, status int, page string, data pageData) {
	t, ok := rd.pages[page]
	if !ok {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "unknown page")
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("render failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("page", page).Msg("failed to write page")
	}
}
