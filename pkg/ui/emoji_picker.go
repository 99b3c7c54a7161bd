package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-go-golems/chatbox/pkg/emoji"
	"github.com/samber/lo"
)

const (
	pickerKey       = "emoji"
	pickerMaxWidth  = 36
	pickerRows      = 8
	pickerTitleText = "Emoji"
)

// EmojiSelectedMsg is sent once per emoji chosen in the picker.
type EmojiSelectedMsg struct {
	Glyph string
}

// EmojiPicker is the huh form shown in the popover. A completed form is
// spent; the model builds a fresh picker to keep selecting.
type EmojiPicker struct {
	form  *huh.Form
	width int
	done  bool
}

func pickerOptions(recent []string) []huh.Option[string] {
	opts := lo.Map(recent, func(g string, _ int) huh.Option[string] {
		label := g + "  recent"
		if e, ok := emoji.Lookup(g); ok {
			label = g + "  " + e.Name + " (recent)"
		}
		return huh.NewOption(label, g)
	})
	for _, c := range emoji.Categories {
		for _, e := range c.Emojis {
			opts = append(opts, huh.NewOption(e.Glyph+"  "+e.Name+" · "+c.Name, e.Glyph))
		}
	}
	return opts
}

// pickerKeyMap makes enter the only way to pick; tab and shift+tab never
// complete the form.
func pickerKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Select.Next = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick"))
	km.Select.Submit = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick"))
	km.Select.Prev = key.NewBinding(key.WithKeys("shift+tab"), key.WithDisabled())
	return km
}

func NewEmojiPicker(recent []string, width int) EmojiPicker {
	width = max(1, min(pickerMaxWidth, width))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(pickerKey).
				Options(pickerOptions(recent)...).
				Height(pickerRows),
		),
	).
		WithShowHelp(false).
		WithKeyMap(pickerKeyMap()).
		WithWidth(max(1, width-popoverStyle.GetHorizontalFrameSize())).
		WithTheme(huh.ThemeCharm())

	return EmojiPicker{form: form, width: width}
}

func (p EmojiPicker) Init() tea.Cmd {
	if p.form == nil {
		return nil
	}
	return p.form.Init()
}

// Update forwards msg to the form and reports a completed selection as an
// EmojiSelectedMsg.
func (p EmojiPicker) Update(msg tea.Msg) (EmojiPicker, tea.Cmd) {
	if p.form == nil || p.done {
		return p, nil
	}

	fm, cmd := p.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.done = true
		glyph := p.form.GetString(pickerKey)
		if glyph == "" {
			return p, cmd
		}
		return p, tea.Batch(cmd, func() tea.Msg { return EmojiSelectedMsg{Glyph: glyph} })
	}
	return p, cmd
}

func (p EmojiPicker) View() string {
	if p.form == nil {
		return ""
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		popoverTitleStyle.Render(pickerTitleText),
		p.form.View(),
	)
	return popoverStyle.Width(p.width - 2).Render(content)
}

// staticView adapts a rendered string to tea.Model for overlay composition.
type staticView struct {
	content string
}

func (s *staticView) Init() tea.Cmd {
	return nil
}

func (s *staticView) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return s, nil
}

func (s *staticView) View() string {
	return s.content
}
