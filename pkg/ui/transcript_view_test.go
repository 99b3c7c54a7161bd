package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-go-golems/chatbox/pkg/chatbox"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLine(t *testing.T) {
	cases := map[string]string{
		"plain text":                      "plain text",
		"\x1b[31mred\x1b[0m\tok\x07":      "red ok",
		"a\x1b]0;pwned\x07b":              "ab",
		"clear\x1b[2J\x1b[Hscreen":        "clearscreen",
		"bell\x07 and\rreturn\x00":        "bell andreturn",
		"<b>not markup</b> & <script>":    "<b>not markup</b> & <script>",
		"emoji 🙂 and 中文 stay untouched": "emoji 🙂 and 中文 stay untouched",
	}
	for in, want := range cases {
		require.Equal(t, want, SanitizeLine(in), "%q", in)
	}
}

func TestSanitizeBody_SplitsOnLineBreakOnly(t *testing.T) {
	require.Equal(t, []string{"one", "two"}, SanitizeBody("one"+chatbox.LineBreak+"two\x1b[2J"))
	require.Equal(t, []string{"<br>stays"}, SanitizeBody("<br>stays"))
	require.Equal(t, "a\nb", PlainBody("a"+chatbox.LineBreak+"b"))
}

func TestInitials(t *testing.T) {
	require.Equal(t, "RA", Initials("Robot AI"))
	require.Equal(t, "C", Initials("chat"))
	require.Equal(t, "AB", Initials("alpha beta gamma"))
	require.Equal(t, "B", Initials("  \x1b[1mbob  "))
	require.Equal(t, "?", Initials(""))
}

func TestRenderMessage_SelfIsRightAligned(t *testing.T) {
	out := RenderMessage(chatbox.Message{Sender: "me", Body: "hi", Time: "10:15", Self: true}, 40)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	for _, line := range lines {
		require.Equal(t, 40, lipgloss.Width(line))
	}
	require.True(t, strings.HasPrefix(lines[0], " "))
	require.True(t, strings.HasSuffix(strings.TrimRight(lines[0], " "), "hi"))
	require.True(t, strings.HasSuffix(lines[1], "10:15"))
	require.NotContains(t, out, "me")
}

func TestRenderMessage_CounterpartyShowsSender(t *testing.T) {
	out := RenderMessage(chatbox.Message{Sender: "Robot AI", Body: "a" + chatbox.LineBreak + "b", Time: "9:00"}, 40)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	require.True(t, strings.HasPrefix(lines[0], "Robot AI"))
	require.Equal(t, "a", strings.TrimSpace(lines[1]))
	require.Equal(t, "b", strings.TrimSpace(lines[2]))
	require.Equal(t, "9:00", strings.TrimSpace(lines[3]))
	require.NotContains(t, out, chatbox.LineBreak)
}

func TestRenderMessage_NeverEmitsBodyEscapes(t *testing.T) {
	out := RenderMessage(chatbox.Message{Sender: "x\x1b[5m", Body: "\x1b[31mred\x1b]0;t\x07", Time: "9:00"}, 30)
	require.NotContains(t, out, "\x1b")
	require.Contains(t, out, "red")
}

func TestRenderMessage_WrapsLongBodies(t *testing.T) {
	body := strings.Repeat("word ", 30)
	out := RenderMessage(chatbox.Message{Sender: "s", Body: body, Time: "9:00"}, 40)
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 40)
	}
	require.Greater(t, lipgloss.Height(out), 3)
}

func TestRenderTranscript(t *testing.T) {
	msgs := []chatbox.Message{
		{Sender: "a", Body: "first", Time: "1:00"},
		{Sender: "b", Body: "second", Time: "1:01", Self: true},
	}
	out := RenderTranscript(msgs, 30)
	require.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	require.Contains(t, out, "\n\n")
	require.Equal(t, "", RenderTranscript(nil, 30))
}
