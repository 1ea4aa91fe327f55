package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/aidar/activity-board/internal/domain"
	"github.com/aidar/activity-board/internal/ui"
)

// Тексты, которые доска выводит сама
const (
	NoParticipantsText   = "No participants yet"
	LoadFailedHTML       = template.HTML(`<p>Failed to load activities. Please try again later.</p>`)
	SignupFallbackText   = "An error occurred"
	SignupFailedText     = "Failed to sign up. Please try again."
	RemoveFallbackText   = "Error while removing participant"
	RemoveFailedText     = "Failed to remove participant."
	removeParticipantURL = "/activities/click"
)

// cardsTemplate рендерит карточки занятий; html/template экранирует весь текст
var cardsTemplate = template.Must(template.New("cards").Parse(`
{{- range .Activities}}
<div class="activity-card">
  <h4>{{.Name}}</h4>
  <p>{{.Description}}</p>
  <p><strong>Schedule:</strong> {{.Schedule}}</p>
  <p><strong>Availability:</strong> {{.SpotsLeft}} spots left</p>
  {{- if .Participants}}
  <h5 class="participants-title">Participants ({{len .Participants}}):</h5>
  <ul class="participants-list">
    {{- $name := .Name}}
    {{- range .Participants}}
    <li class="participant-item" data-email="{{.}}" data-activity="{{$name}}">
      <form method="post" action="{{$.ClickURL}}">
        <input type="hidden" name="email" value="{{.}}">
        <input type="hidden" name="activity" value="{{$name}}">
        <span class="participant-email">{{.}}</span>
        <button type="submit" class="remove-participant" name="action" value="{{$.RemoveAction}}" aria-label="Remove participant">&times;</button>
      </form>
    </li>
    {{- end}}
  </ul>
  {{- else}}
  <p class="no-participants">{{$.NoParticipants}}</p>
  {{- end}}
</div>
{{- end}}
`))

type cardsData struct {
	Activities     domain.ActivityCollection
	ClickURL       string
	RemoveAction   string
	NoParticipants string
}

// RenderActivities возвращает HTML карточек для всех занятий коллекции
func RenderActivities(activities domain.ActivityCollection) (template.HTML, error) {
	var buf bytes.Buffer
	err := cardsTemplate.Execute(&buf, cardsData{
		Activities:     activities,
		ClickURL:       removeParticipantURL,
		RemoveAction:   ui.ActionRemoveParticipant,
		NoParticipants: NoParticipantsText,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render activities: %w", err)
	}

	// Содержимое собрано html/template и уже экранировано
	return template.HTML(buf.String()), nil
}
