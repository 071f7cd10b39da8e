// Package templates embeds the server-rendered pages. Every file wraps its page in
// {{define "<dir>/<file>"}} so handlers render by that name.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"bookstore-web/internal/shared/forms"
)

//go:embed *.html */*.html
var files embed.FS

// Funcs are the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"rating": func(d decimal.NullDecimal) string {
			if !d.Valid {
				return "No rating"
			}
			return d.Decimal.StringFixed(2)
		},
		"date": func(t time.Time) string {
			return t.Format("02 Jan 2006 15:04")
		},
		"fieldError": func(errs forms.Errors, field string) string {
			return errs.Get(field)
		},
		// selected reports whether a select option with id matches the submitted value.
		"selected": func(value string, id int64) bool {
			return value == strconv.FormatInt(id, 10)
		},
		"pathID": func(id int64) string {
			return strconv.FormatInt(id, 10)
		},
		"sortURL": func(sort, direction string) string {
			return fmt.Sprintf("/books/?sort=%s&direction=%s", sort, direction)
		},
	}
}

// Load parses every embedded page.
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(files, "*.html", "*/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
