package ui

import (
	"html/template"
	"sync"
)

// LoadingHTML is the list content shown before the first fetch completes.
const LoadingHTML template.HTML = `<p>Loading activities...</p>`

// PlaceholderOption is the first, empty entry of the activity select.
var PlaceholderOption = Option{Value: "", Label: "-- Select an activity --"}

// Message is the state of the message region.
type Message struct {
	Text   string       `json:"text"`
	Style  MessageStyle `json:"style"`
	Hidden bool         `json:"hidden"`
}

// Snapshot is a consistent copy of the document state.
type Snapshot struct {
	ListHTML template.HTML `json:"list_html"`
	Options  []Option      `json:"options"`
	Email    string        `json:"email"`
	Activity string        `json:"activity"`
	Message  Message       `json:"message"`
}

// Document is an in-memory page. All element methods are safe for
// concurrent use; the board and the timers mutate it from different goroutines.
type Document struct {
	mu       sync.RWMutex
	listHTML template.HTML
	options  []Option
	email    string
	activity string
	message  Message
}

// NewDocument returns a document in its initial, pre-fetch state.
func NewDocument() *Document {
	return &Document{
		listHTML: LoadingHTML,
		options:  []Option{PlaceholderOption},
		message:  Message{Hidden: true},
	}
}

// Elements exposes the document as the element set the board works with.
func (d *Document) Elements() Elements {
	return Elements{
		List:    listElement{d},
		Select:  selectElement{d},
		Form:    formElement{d},
		Message: messageElement{d},
	}
}

// Fill sets the signup inputs, as the user typing into the form would.
func (d *Document) Fill(email, activity string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.email = email
	d.activity = activity
}

// Snapshot returns a copy of the current state.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	opts := make([]Option, len(d.options))
	copy(opts, d.options)

	return Snapshot{
		ListHTML: d.listHTML,
		Options:  opts,
		Email:    d.email,
		Activity: d.activity,
		Message:  d.message,
	}
}

type listElement struct{ d *Document }

func (e listElement) SetHTML(html template.HTML) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.listHTML = html
}

type selectElement struct{ d *Document }

func (e selectElement) Replace(placeholder Option, opts ...Option) {
	options := make([]Option, 0, len(opts)+1)
	options = append(options, placeholder)
	options = append(options, opts...)

	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.options = options
}

type formElement struct{ d *Document }

func (e formElement) Values() (string, string) {
	e.d.mu.RLock()
	defer e.d.mu.RUnlock()
	return e.d.email, e.d.activity
}

func (e formElement) Reset() {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.email = ""
	e.d.activity = ""
}

type messageElement struct{ d *Document }

func (e messageElement) Show(text string, style MessageStyle) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.message = Message{Text: text, Style: style}
}

func (e messageElement) Hide() {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.message.Hidden = true
}
