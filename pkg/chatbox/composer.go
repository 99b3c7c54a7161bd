package chatbox

import "time"

// Composer owns the draft buffer.
type Composer struct {
	draft string
}

func (c Composer) Draft() string {
	return c.draft
}

// SetDraft replaces the buffer verbatim.
func (c Composer) SetDraft(text string) Composer {
	c.draft = text
	return c
}

// InsertEmoji appends glyph to the end of the buffer, wherever the cursor is.
func (c Composer) InsertEmoji(glyph string) Composer {
	c.draft += glyph
	return c
}

// Submit commits the draft to t. The draft is cleared only when a message
// was actually appended.
func (c Composer) Submit(t Transcript, now time.Time) (Composer, Transcript, Message, bool) {
	t, msg, ok := t.Append(c.draft, now)
	if !ok {
		return c, t, Message{}, false
	}
	c.draft = ""
	return c, t, msg, true
}
