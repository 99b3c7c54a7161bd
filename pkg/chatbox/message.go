// Package chatbox holds the state of a chat window: the transcript, the draft
// being composed, the emoji picker and the frame geometry. Everything in here
// is a plain value; Reduce turns an Event into the next State plus the Effects
// a presentation layer has to carry out.
package chatbox

import (
	"strings"

	"github.com/google/uuid"
)

// LineBreak is the only markup a message body may carry. Newlines typed into
// the draft are stored as LineBreak; renderers split on it and treat
// everything else as literal text.
const LineBreak = "<br/>"

// Message is a committed transcript entry. Messages are never modified once
// they are part of a Transcript.
type Message struct {
	ID     uuid.UUID
	Sender string
	Body   string
	Time   string
	Self   bool
}

// Record is the shape in which hosts hand over the initial transcript.
type Record struct {
	Sender  string `yaml:"sender" validate:"required"`
	Message string `yaml:"message"`
	Time    string `yaml:"time" validate:"required"`
	Self    bool   `yaml:"self"`
}

func (r Record) toMessage() Message {
	return Message{
		ID:     uuid.New(),
		Sender: r.Sender,
		Body:   EncodeBody(r.Message),
		Time:   r.Time,
		Self:   r.Self,
	}
}

// EncodeBody replaces literal newlines with LineBreak.
func EncodeBody(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", LineBreak)
}

// BodyLines splits an encoded body into display lines.
func BodyLines(body string) []string {
	return strings.Split(body, LineBreak)
}
