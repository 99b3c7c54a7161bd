package chatbox

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DefaultTimeLayout formats message timestamps as hour:minute.
const DefaultTimeLayout = "15:04"

// Transcript is the ordered, append-only list of committed messages.
//
// Transcript is a value: Append returns a new Transcript and leaves the
// receiver untouched, so earlier states stay valid.
type Transcript struct {
	localUser  string
	timeLayout string
	messages   []Message
}

type TranscriptOption func(*Transcript)

// WithTimeLayout sets the time.Format layout used for new messages.
func WithTimeLayout(layout string) TranscriptOption {
	return func(t *Transcript) {
		if layout != "" {
			t.timeLayout = layout
		}
	}
}

// WithSeed fills the transcript with the host supplied records.
func WithSeed(records []Record) TranscriptOption {
	return func(t *Transcript) {
		t.messages = lo.Map(records, func(r Record, _ int) Message {
			return r.toMessage()
		})
	}
}

// NewTranscript creates a transcript whose appended messages are attributed
// to localUser.
func NewTranscript(localUser string, options ...TranscriptOption) Transcript {
	t := Transcript{
		localUser:  localUser,
		timeLayout: DefaultTimeLayout,
	}
	for _, o := range options {
		o(&t)
	}
	return t
}

// Append commits draft as a message from the local user. A draft that is
// blank after trimming is not committed and ok is false.
func (t Transcript) Append(draft string, now time.Time) (Transcript, Message, bool) {
	if strings.TrimSpace(draft) == "" {
		return t, Message{}, false
	}

	msg := Message{
		ID:     uuid.New(),
		Sender: t.localUser,
		Body:   EncodeBody(draft),
		Time:   now.Format(t.timeLayout),
		Self:   true,
	}

	// cap == len, so append always copies
	t.messages = append(t.messages[:len(t.messages):len(t.messages)], msg)
	return t, msg, true
}

func (t Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the transcript in append order.
func (t Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recently committed message.
func (t Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
