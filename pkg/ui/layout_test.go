package ui

import (
	"testing"

	"github.com/go-go-golems/chatbox/pkg/chatbox"
	"github.com/stretchr/testify/require"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(chatbox.Rect{Width: 80, Height: 24})

	require.Equal(t, chatbox.Rect{X: 1, Y: 1, Width: 78, Height: 22}, l.inner)
	require.Equal(t, 15, l.viewportHeight)
	require.Equal(t, chatbox.Rect{X: 1, Y: 4, Width: 78, Height: 15}, l.viewport)
	require.Equal(t, chatbox.Rect{X: 1, Y: 20, Width: 78, Height: 2}, l.composer)
	require.Equal(t, 66, l.inputWidth)
	require.Equal(t, chatbox.Rect{X: 73, Y: 20, Width: 6, Height: 1}, l.sendButton)
	require.Equal(t, chatbox.Rect{X: 68, Y: 20, Width: 4, Height: 1}, l.emojiButton)
}

func TestComputeLayout_Offset(t *testing.T) {
	l := computeLayout(chatbox.Rect{X: 5, Y: 3, Width: 40, Height: 12})

	require.Equal(t, chatbox.Rect{X: 6, Y: 4, Width: 38, Height: 10}, l.inner)
	require.Equal(t, 3, l.viewportHeight)
	require.Equal(t, 11, l.composer.Y)
	require.Equal(t, 44, l.sendButton.X+l.sendButton.Width)
}

func TestComputeLayout_TinyFrameKeepsOneRow(t *testing.T) {
	l := computeLayout(chatbox.Rect{Width: 3, Height: 3})
	require.Equal(t, 1, l.viewportHeight)
	require.Equal(t, 1, l.inputWidth)
}

func TestLayout_PopoverOrigin(t *testing.T) {
	l := computeLayout(chatbox.Rect{Width: 80, Height: 24})

	x, y := l.popoverOrigin(36, 11)
	require.Equal(t, 72-36, x)
	require.Equal(t, 9, y)

	x, y = l.popoverOrigin(100, 40)
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
}
