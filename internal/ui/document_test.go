package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument_InitialState(t *testing.T) {
	snap := NewDocument().Snapshot()

	assert.Equal(t, LoadingHTML, snap.ListHTML)
	assert.Equal(t, []Option{PlaceholderOption}, snap.Options)
	assert.True(t, snap.Message.Hidden)
}

func TestDocument_Elements(t *testing.T) {
	doc := NewDocument()
	el := doc.Elements()

	el.List.SetHTML("<p>cards</p>")
	el.Select.Replace(PlaceholderOption, Option{Value: "Chess Club", Label: "Chess Club"})

	doc.Fill("a@m.edu", "Chess Club")
	email, activity := el.Form.Values()
	assert.Equal(t, "a@m.edu", email)
	assert.Equal(t, "Chess Club", activity)

	el.Message.Show("Signed up", StyleSuccess)
	snap := doc.Snapshot()
	assert.Equal(t, "<p>cards</p>", string(snap.ListHTML))
	assert.Len(t, snap.Options, 2)
	assert.Equal(t, Message{Text: "Signed up", Style: StyleSuccess}, snap.Message)

	el.Form.Reset()
	el.Message.Hide()
	snap = doc.Snapshot()
	assert.Empty(t, snap.Email)
	assert.Empty(t, snap.Activity)
	assert.True(t, snap.Message.Hidden)
	assert.Equal(t, "Signed up", snap.Message.Text, "hiding keeps the text")
}

func TestDocument_SnapshotIsACopy(t *testing.T) {
	doc := NewDocument()
	snap := doc.Snapshot()
	snap.Options[0].Label = "changed"

	assert.Equal(t, PlaceholderOption, doc.Snapshot().Options[0])
}

func TestSelect_ReplaceDropsPreviousOptions(t *testing.T) {
	doc := NewDocument()
	el := doc.Elements()

	el.Select.Replace(PlaceholderOption,
		Option{Value: "Chess Club", Label: "Chess Club"},
		Option{Value: "Art Club", Label: "Art Club"},
	)
	el.Select.Replace(PlaceholderOption, Option{Value: "Gym Class", Label: "Gym Class"})

	assert.Equal(t, []Option{PlaceholderOption, {Value: "Gym Class", Label: "Gym Class"}}, doc.Snapshot().Options)
}
