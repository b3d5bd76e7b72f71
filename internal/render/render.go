// Package render produces the outbound newsletter HTML from embedded
// templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const newsletterTemplate = "newsletter.html.tmpl"

// Engine renders the embedded templates. It is safe for concurrent use.
type Engine struct {
	templates *template.Template
	brand     string
}

// New parses all embedded templates. brand is shown in the header band.
func New(brand string) (*Engine, error) {
	t, err := template.New("render").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Engine{templates: t, brand: brand}, nil
}

type newsletterData struct {
	Brand   string
	Subject string
	Content string
}

// RenderNewsletter implements port.Renderer. Subject and content are HTML
// escaped; newlines in content survive through white-space: pre-wrap.
func (e *Engine) RenderNewsletter(subject, content string) (string, error) {
	if e == nil || e.templates == nil {
		return "", fmt.Errorf("nil engine")
	}

	buf := bytes.NewBuffer(nil)
	err := e.templates.ExecuteTemplate(buf, newsletterTemplate, newsletterData{
		Brand:   e.brand,
		Subject: subject,
		Content: content,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
