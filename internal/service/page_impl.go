package service

import (
	"fmt"
	"html/template"
	"io"

	"github.com/compozy/k8s-demo/internal/domain"
)

const fragmentTemplate = `{{define "fragment"}}<div style="{{.ContainerStyle}}">
  <h1>{{.View.Heading}}</h1>
  <p>{{.View.Description}}</p>
  <p>{{.View.VersionLine}}</p>
</div>{{end}}`

const documentTemplate = `{{define "document"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.View.Heading}}</title>
  <style>
{{.CSS}}  </style>
</head>
<body>
{{template "fragment" .}}
</body>
</html>
{{end}}`

type pageData struct {
	View           *domain.RootView
	ContainerStyle template.CSS
	CSS            template.CSS
}

// pageRenderer implements the PageRenderer interface with html/template
type pageRenderer struct {
	tmpl *template.Template
	css  template.CSS
}

// NewPageRenderer parses the page templates for the given style sheet
func NewPageRenderer(sheet StyleSheet) (PageRenderer, error) {
	tmpl, err := template.New("page").Parse(fragmentTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment template: %w", err)
	}
	if _, err := tmpl.Parse(documentTemplate); err != nil {
		return nil, fmt.Errorf("failed to parse document template: %w", err)
	}
	return &pageRenderer{
		tmpl: tmpl,
		css:  template.CSS(sheet.CSS()),
	}, nil
}

// RenderFragment writes the view's container element
func (r *pageRenderer) RenderFragment(w io.Writer, view *domain.RootView) error {
	if err := r.tmpl.ExecuteTemplate(w, "fragment", r.data(view)); err != nil {
		return fmt.Errorf("failed to render fragment: %w", err)
	}
	return nil
}

// RenderDocument writes a full HTML document embedding the fragment and style sheet
func (r *pageRenderer) RenderDocument(w io.Writer, view *domain.RootView) error {
	if err := r.tmpl.ExecuteTemplate(w, "document", r.data(view)); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

func (r *pageRenderer) data(view *domain.RootView) pageData {
	return pageData{
		View:           view,
		ContainerStyle: template.CSS(ContainerStyle),
		CSS:            r.css,
	}
}
