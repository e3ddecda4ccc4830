// Package view renders the HTML fragments swapped into the POS pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ridloal/pos-web-client/internal/platform/format"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("pos").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse view templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNew is New for program start-up.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) RenderString(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":    money,
		"number":   number,
		"date":     format.FormatDate,
		"orNA":     orNA,
		"imageURL": imageURL,
		"initial":  initial,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"selected": selected,
	}
}

func money(v interface{}) string {
	switch n := v.(type) {
	case decimal.Decimal:
		return format.FormatMoney(n)
	case *decimal.Decimal:
		if n == nil {
			return format.FormatCurrency(0)
		}
		return format.FormatMoney(*n)
	case float64:
		return format.FormatCurrency(n)
	case int:
		return format.FormatCurrency(float64(n))
	case posdomain.Int:
		return format.FormatCurrency(float64(n.Int()))
	}
	return format.FormatCurrency(0)
}

func number(v interface{}) string {
	switch n := v.(type) {
	case int:
		return format.FormatInt(n)
	case posdomain.Int:
		return format.FormatInt(n.Int())
	case float64:
		return format.FormatNumber(n)
	case decimal.Decimal:
		return format.FormatNumber(n.InexactFloat64())
	}
	return "0"
}

// orNA renders blank values as N/A. The text is escaped here, so it is
// returned as template.HTML to keep html/template from escaping it again.
func orNA(v interface{}) template.HTML {
	var s string
	switch t := v.(type) {
	case nil:
	case string:
		s = t
	case posdomain.Text:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	if strings.TrimSpace(s) == "" {
		s = ""
	}
	return template.HTML(format.EscapeHTML(s))
}

// imageURL lets stored profile pictures (data URIs and http links) through
// the template URL filter. Anything else renders empty.
func imageURL(s string) template.URL {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "data:image/"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"):
		return template.URL(s)
	}
	return ""
}

func initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func selected(current, value string) bool {
	return current != "" && current == value
}
