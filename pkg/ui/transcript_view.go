package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-go-golems/chatbox/pkg/chatbox"
	"github.com/samber/lo"
)

// SanitizeLine makes one line of untrusted text safe to print: escape
// sequences are stripped, tabs become spaces and every other control rune is
// dropped.
func SanitizeLine(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// SanitizeBody splits a message body at line-break markers and sanitizes
// every resulting line.
func SanitizeBody(body string) []string {
	return lo.Map(chatbox.BodyLines(body), func(line string, _ int) string {
		return SanitizeLine(line)
	})
}

// PlainBody is the body as multi-line plain text.
func PlainBody(body string) string {
	return strings.Join(SanitizeBody(body), "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// Initials derives the avatar badge from a title: the first letter of up to
// two words.
func Initials(title string) string {
	words := strings.Fields(SanitizeLine(title))
	if len(words) == 0 {
		return "?"
	}
	var b strings.Builder
	for _, w := range words[:min(2, len(words))] {
		r := []rune(w)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func renderHeader(title, subtitle string, width int) string {
	badge := avatarStyle.Render(" " + Initials(title) + " ")
	name := truncate(SanitizeLine(title), width-lipgloss.Width(badge)-1)
	line1 := badge + " " + titleStyle.Render(name)
	line2 := subtitleStyle.Render(truncate(SanitizeLine(subtitle), width))
	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}

func separator(width int) string {
	return separatorStyle.Render(strings.Repeat("─", max(0, width)))
}

// RenderMessage draws one message at the given transcript width. Own
// messages are right aligned; the counterparty's carry the sender name.
func RenderMessage(m chatbox.Message, width int) string {
	if width <= 0 {
		return ""
	}

	style := otherBubbleStyle
	align := lipgloss.Left
	if m.Self {
		style = selfBubbleStyle
		align = lipgloss.Right
	}

	lines := SanitizeBody(m.Body)
	maxInner := max(1, width*3/4-style.GetHorizontalFrameSize())
	inner := 1
	for _, l := range lines {
		inner = max(inner, lipgloss.Width(l))
	}
	inner = min(inner, maxInner)

	bubble := style.Width(inner + style.GetHorizontalFrameSize()).Render(strings.Join(lines, "\n"))

	parts := make([]string, 0, 3)
	if !m.Self {
		parts = append(parts, senderStyle.Render(truncate(SanitizeLine(m.Sender), width)))
	}
	parts = append(parts, bubble, timeStyle.Render(truncate(SanitizeLine(m.Time), width)))

	block := lipgloss.JoinVertical(align, parts...)
	return lipgloss.PlaceHorizontal(width, align, block)
}

// RenderTranscript draws all messages separated by a blank line.
func RenderTranscript(messages []chatbox.Message, width int) string {
	rendered := lo.Map(messages, func(m chatbox.Message, _ int) string {
		return RenderMessage(m, width)
	})
	return strings.Join(rendered, "\n\n")
}
