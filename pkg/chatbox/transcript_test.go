package chatbox

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var seedRecords = []Record{
	{Sender: "PM", Message: "How is the project going?", Time: "9:00", Self: false},
	{Sender: "me", Message: "Backend is 70% done.", Time: "9:05", Self: true},
}

func TestTranscript_Append_GrowsInCallOrder(t *testing.T) {
	tr := NewTranscript("me")
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	texts := []string{"one", "two", "three", "four"}
	for i, text := range texts {
		var ok bool
		tr, _, ok = tr.Append(text, now)
		require.True(t, ok)
		require.Equal(t, i+1, tr.Len())
	}

	msgs := tr.Messages()
	require.Len(t, msgs, len(texts))
	for i, text := range texts {
		require.Equal(t, text, msgs[i].Body)
	}
}

func TestTranscript_Append_IgnoresBlankDrafts(t *testing.T) {
	tr := NewTranscript("me", WithSeed(seedRecords))

	for _, draft := range []string{"", "   ", "\n\t "} {
		next, msg, ok := tr.Append(draft, time.Now())
		require.False(t, ok)
		require.Equal(t, Message{}, msg)
		require.Equal(t, 2, next.Len())
	}
}

func TestTranscript_Append_BuildsLocalMessage(t *testing.T) {
	tr := NewTranscript("自己", WithSeed(seedRecords))
	now := time.Date(2026, 10, 18, 14, 7, 0, 0, time.UTC)

	tr, msg, ok := tr.Append("Hello", now)
	require.True(t, ok)
	require.Equal(t, 3, tr.Len())

	last, ok := tr.Last()
	require.True(t, ok)
	require.Equal(t, msg, last)
	require.True(t, last.Self)
	require.Equal(t, "自己", last.Sender)
	require.Equal(t, "Hello", last.Body)
	require.Equal(t, now.Format(DefaultTimeLayout), last.Time)
	require.Equal(t, "14:07", last.Time)
}

func TestTranscript_Append_EncodesNewlines(t *testing.T) {
	tr := NewTranscript("me")

	tr, msg, ok := tr.Append("a\nb", time.Now())
	require.True(t, ok)
	require.Equal(t, "a"+LineBreak+"b", msg.Body)
	require.False(t, strings.Contains(msg.Body, "\n"))
	require.Equal(t, []string{"a", "b"}, BodyLines(msg.Body))

	_, msg, ok = tr.Append("x\r\ny", time.Now())
	require.True(t, ok)
	require.Equal(t, "x"+LineBreak+"y", msg.Body)
}

func TestTranscript_Append_DoesNotAlterEarlierValues(t *testing.T) {
	base := NewTranscript("me", WithSeed(seedRecords))
	before := base.Messages()

	a, _, _ := base.Append("first branch", time.Now())
	b, _, _ := base.Append("second branch", time.Now())

	require.Equal(t, before, base.Messages())
	require.Equal(t, "first branch", a.Messages()[2].Body)
	require.Equal(t, "second branch", b.Messages()[2].Body)
}

func TestTranscript_Messages_ReturnsCopy(t *testing.T) {
	tr := NewTranscript("me", WithSeed(seedRecords))

	msgs := tr.Messages()
	msgs[0].Body = "tampered"

	require.Equal(t, "How is the project going?", tr.Messages()[0].Body)
}

func TestTranscript_WithTimeLayout(t *testing.T) {
	tr := NewTranscript("me", WithTimeLayout("3:04PM"))
	now := time.Date(2026, 10, 18, 21, 5, 0, 0, time.UTC)

	_, msg, ok := tr.Append("late", now)
	require.True(t, ok)
	require.Equal(t, "9:05PM", msg.Time)

	_, msg, _ = NewTranscript("me", WithTimeLayout("")).Append("x", now)
	require.Equal(t, "21:05", msg.Time)
}

func TestTranscript_WithSeed_KeepsRecordFields(t *testing.T) {
	tr := NewTranscript("me", WithSeed(seedRecords))

	msgs := tr.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "PM", msgs[0].Sender)
	require.False(t, msgs[0].Self)
	require.Equal(t, "9:05", msgs[1].Time)
	require.True(t, msgs[1].Self)
	require.NotEqual(t, msgs[0].ID, msgs[1].ID)
}
