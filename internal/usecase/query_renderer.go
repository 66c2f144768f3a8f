package usecase

import (
	"bytes"
	"fmt"
	"text/template"

	"release-notes-bot/internal/domain/model"
)

// RenderQuery renders a query template against the context. Placeholders use
// the {{ .key }} form and every referenced key must be present.
func RenderQuery(name, text string, rc model.RenderContext) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", model.RenderError("parse "+name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rc.Values()); err != nil {
		return "", model.RenderError("render "+name, fmt.Errorf("execute template: %w", err))
	}

	return buf.String(), nil
}
