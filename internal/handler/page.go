package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/aidar/activity-board/internal/ui"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// renderPage собирает HTML страницы из снимка документа
func renderPage(snapshot ui.Snapshot) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "index.html", snapshot); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}
