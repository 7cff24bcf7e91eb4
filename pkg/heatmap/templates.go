package heatmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed templates/grid.html.tmpl
var gridTemplateStr string

//go:embed templates/legend.html.tmpl
var legendTemplateStr string

//go:embed templates/layout.html.tmpl
var layoutTemplateStr string

func renderTemplate(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.String(), nil
}

// debugWrap tags a markup block with paired comments naming the
// sub-renderer that produced it. Diagnostic only; no layout effect.
func debugWrap(section, markup string) string {
	return fmt.Sprintf("<!-- %s -->%s<!-- end %s -->", section, markup, section)
}
