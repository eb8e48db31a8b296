package samplestats

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
)

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

//nolint:gochecknoglobals
var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{
			"join":   joinInts,
			"fixed2": func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) },
		}).
		ParseFS(templatesFS, "templates/report.html.tmpl"),
)

// RenderHTML renders the report as a complete HTML document.
// Tables are rendered in ascending value order.
func RenderHTML(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	err := reportTemplate.Execute(&buf, r.Document())
	if err != nil {
		return nil, ewrap.Wrap(err, "render report")
	}

	return buf.Bytes(), nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
