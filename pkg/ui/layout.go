package ui

import "github.com/go-go-golems/chatbox/pkg/chatbox"

const (
	headerRows   = 2
	composerRows = 2
	statusRows   = 1
	// header, separator, separator, composer, status
	chromeRows = headerRows + 1 + 1 + composerRows + statusRows

	emojiButtonLabel = "[😀]"
	sendButtonLabel  = "[Send]"
	emojiButtonWidth = 4
	sendButtonWidth  = 6
	// gap before each button
	buttonsWidth = 1 + emojiButtonWidth + 1 + sendButtonWidth
)

// layout is the geometry of everything inside the frame, in absolute
// terminal cells.
type layout struct {
	inner          chatbox.Rect
	viewport       chatbox.Rect
	composer       chatbox.Rect
	inputWidth     int
	emojiButton    chatbox.Rect
	sendButton     chatbox.Rect
	viewportHeight int
}

func computeLayout(frame chatbox.Rect) layout {
	inner := chatbox.Rect{
		X:      frame.X + 1,
		Y:      frame.Y + 1,
		Width:  max(1, frame.Width-2),
		Height: max(1, frame.Height-2),
	}
	vh := max(1, inner.Height-chromeRows)

	l := layout{
		inner:          inner,
		viewportHeight: vh,
		viewport:       chatbox.Rect{X: inner.X, Y: inner.Y + headerRows + 1, Width: inner.Width, Height: vh},
		inputWidth:     max(1, inner.Width-buttonsWidth),
	}
	l.composer = chatbox.Rect{X: inner.X, Y: l.viewport.Y + vh + 1, Width: inner.Width, Height: composerRows}

	right := inner.X + inner.Width
	l.sendButton = chatbox.Rect{X: right - sendButtonWidth, Y: l.composer.Y, Width: sendButtonWidth, Height: 1}
	l.emojiButton = chatbox.Rect{X: l.sendButton.X - 1 - emojiButtonWidth, Y: l.composer.Y, Width: emojiButtonWidth, Height: 1}
	return l
}

// popoverOrigin places a w x h popover above the emoji button, right
// aligned with it and kept on screen.
func (l layout) popoverOrigin(w, h int) (int, int) {
	x := l.emojiButton.X + l.emojiButton.Width - w
	y := l.composer.Y - h
	return max(0, x), max(0, y)
}
