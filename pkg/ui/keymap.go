package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit       key.Binding
	Send         key.Binding
	Newline      key.Binding
	TogglePicker key.Binding
	Dismiss      key.Binding
	CopyLast     key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	GrowWidth    key.Binding
	ShrinkWidth  key.Binding
	GrowHeight   key.Binding
	ShrinkHeight key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Send:         key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Newline:      key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "newline")),
		TogglePicker: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "emoji")),
		Dismiss:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close picker")),
		CopyLast:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy last")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		GrowWidth:    key.NewBinding(key.WithKeys("alt+right"), key.WithHelp("alt+→", "wider")),
		ShrinkWidth:  key.NewBinding(key.WithKeys("alt+left"), key.WithHelp("alt+←", "narrower")),
		GrowHeight:   key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "taller")),
		ShrinkHeight: key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "shorter")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.TogglePicker, k.CopyLast, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Send, k.Newline},
		{k.TogglePicker, k.Dismiss, k.CopyLast},
		{k.PageUp, k.PageDown},
		{k.GrowWidth, k.ShrinkWidth, k.GrowHeight, k.ShrinkHeight},
		{k.Quit},
	}
}
