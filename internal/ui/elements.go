// Package ui describes the page elements the activity board drives and
// provides an in-memory document implementing them.
package ui

import "html/template"

// MessageStyle is the visual style of the message region.
type MessageStyle string

const (
	StyleSuccess MessageStyle = "success"
	StyleError   MessageStyle = "error"
)

// Option is one entry of the activity select.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ActionRemoveParticipant marks a click on a participant's remove button.
const ActionRemoveParticipant = "remove-participant"

// ListClick is a click that happened somewhere inside the activity list.
// Email and Activity carry the data of the participant item the click landed in.
type ListClick struct {
	Action   string
	Email    string
	Activity string
}

// ActivityList is the area the activity cards are rendered into.
type ActivityList interface {
	SetHTML(html template.HTML)
}

// ActivitySelect is the select control listing activity names.
// Replace swaps the whole option list in one step.
type ActivitySelect interface {
	Replace(placeholder Option, opts ...Option)
}

// SignupForm holds the signup inputs.
type SignupForm interface {
	Values() (email, activity string)
	Reset()
}

// MessageRegion is the shared, transient message area.
type MessageRegion interface {
	Show(text string, style MessageStyle)
	Hide()
}

// Elements groups the page elements handed to the board at setup.
type Elements struct {
	List    ActivityList
	Select  ActivitySelect
	Form    SignupForm
	Message MessageRegion
}
