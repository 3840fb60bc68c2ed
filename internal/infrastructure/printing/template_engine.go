package printing

import (
	"bytes"
	"context"
	"html/template"
	"path"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zumech/backend/internal/domain/printing"
)

// TemplateEngine turns page models into HTML using the embedded templates.
// Templates are parsed once; Render is safe for concurrent use.
type TemplateEngine struct {
	letterhead Letterhead
	pages      map[printing.DocKind]*template.Template
}

// pageView is the root value every template executes against
type pageView struct {
	Head  Letterhead
	Title string
	Page  any
}

// NewTemplateEngine parses the embedded templates. Each document template
// is parsed together with the shared layout.
func NewTemplateEngine(letterhead Letterhead) (*TemplateEngine, error) {
	layout, err := GetTemplateContent(layoutFile)
	if err != nil {
		return nil, NewRenderError(ErrCodeTemplateError, "failed to load layout", err)
	}

	e := &TemplateEngine{
		letterhead: letterhead,
		pages:      make(map[printing.DocKind]*template.Template),
	}
	for _, def := range GetDefaultTemplates() {
		content, err := GetTemplateContent(def.FilePath)
		if err != nil {
			return nil, NewRenderError(ErrCodeTemplateError, "failed to load template", err)
		}
		tmpl, err := template.New(path.Base(def.FilePath)).Funcs(funcMap()).Parse(content)
		if err == nil {
			_, err = tmpl.Parse(layout)
		}
		if err != nil {
			return nil, NewRenderError(ErrCodeTemplateError, "failed to parse template "+def.FilePath, err)
		}
		e.pages[def.Kind] = tmpl
	}
	return e, nil
}

// Render renders the page of kind with data, one of the *Page models
func (e *TemplateEngine) Render(ctx context.Context, kind printing.DocKind, data any) (string, error) {
	tmpl, ok := e.pages[kind]
	if !ok {
		return "", NewRenderError(ErrCodeTemplateError, "unknown document kind: "+string(kind), nil)
	}

	var buf bytes.Buffer
	view := pageView{Head: e.letterhead, Title: pageTitle(kind, data), Page: data}
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", NewRenderError(ErrCodeTemplateError, "failed to execute template", err)
	}
	return buf.String(), nil
}

// Title returns the PDF metadata title of a page
func (e *TemplateEngine) Title(kind printing.DocKind, data any) string {
	return pageTitle(kind, data)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money":  FormatMoney,
		"amount": FormatAmount,
		"upper":  strings.ToUpper,
		"status": paidText,
	}
}

var numberPrinter = message.NewPrinter(language.English)

// FormatAmount prints a decimal with thousands separators and two
// decimals: 12345.5 → "12,345.50"
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	_, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + numberPrinter.Sprintf("%d", d.IntPart()) + "." + frac
}

// FormatMoney prints a decimal as rupees: "Rs. 12,345.00"
func FormatMoney(d decimal.Decimal) string {
	return "Rs. " + FormatAmount(d)
}

func paidText(paid bool) string {
	if paid {
		return "Paid"
	}
	return "Unpaid"
}
