package form

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/sinding/booking-api/internal/domain/catalogue"
	"github.com/sinding/booking-api/internal/domain/pricing"
)

//go:embed templates/*.html
var templateFS embed.FS

// md renders catalogue descriptions. Raw HTML in the source is escaped.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var pageTemplate = template.Must(
	template.New("booking_form.html").
		Funcs(template.FuncMap{
			"markdown": renderMarkdown,
			"nok":      pricing.FormatNOK,
		}).
		ParseFS(templateFS, "templates/booking_form.html"),
)

func renderMarkdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// clientItem is the catalogue entry as the page script sees it.
type clientItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"`
	Type  string `json:"type"`
}

func clientItems(items []catalogue.Item) []clientItem {
	out := make([]clientItem, 0, len(items))
	for _, it := range items {
		out = append(out, clientItem{ID: it.ID, Label: it.Label, Price: it.Price, Type: string(it.Type)})
	}
	return out
}
