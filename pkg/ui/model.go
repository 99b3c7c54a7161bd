// Package ui renders a chatbox.State as a Bubble Tea widget: a bordered,
// resizable frame with a header, a scrolling transcript, a two-line composer
// and an emoji popover.
package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-go-golems/chatbox/pkg/chatbox"
	"github.com/go-go-golems/chatbox/pkg/config"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/rs/zerolog/log"
)

type Option func(*Model)

// WithClock replaces time.Now as the source of message timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithClipboard replaces the system clipboard used by the copy binding.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.copyText = write
	}
}

// WithTerminalSize sizes the frame up front instead of waiting for the first
// tea.WindowSizeMsg.
func WithTerminalSize(width, height int) Option {
	return func(m *Model) {
		m.setTerminalSize(width, height)
	}
}

type Model struct {
	cfg   config.Configuration
	state chatbox.State
	keys  KeyMap

	input    textarea.Model
	viewport viewport.Model
	help     help.Model
	scroll   ScrollController
	picker   EmojiPicker

	now      func() time.Time
	copyText func(string) error

	status      string
	statusError bool

	termWidth  int
	termHeight int
	ready      bool

	// commands queued by effect listeners during the current Update
	pending []tea.Cmd
}

var (
	_ chatbox.AppendListener             = (*Model)(nil)
	_ chatbox.DragUpdateListener         = (*Model)(nil)
	_ chatbox.OutsideInteractionListener = (*Model)(nil)
	_ chatbox.PickerListener             = (*Model)(nil)
)

func NewModel(cfg config.Configuration, opts ...Option) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a message…"
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(composerRows)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	ta.Focus()

	m := Model{
		cfg: cfg,
		state: chatbox.State{
			Transcript: chatbox.NewTranscript(cfg.LocalUser,
				chatbox.WithTimeLayout(cfg.TimeLayout),
				chatbox.WithSeed(cfg.Messages),
			),
			Picker: chatbox.NewPicker(cfg.AutoClosePicker),
		},
		keys:     DefaultKeyMap(),
		input:    ta,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		scroll:   NewScrollController(),
		now:      time.Now,
		copyText: clipboard.WriteAll,
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the widget's current chat state.
func (m Model) State() chatbox.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setTerminalSize(msg.Width, msg.Height)

	case scrollFrameMsg:
		var cmd tea.Cmd
		m.scroll, m.viewport, cmd = m.scroll.Update(msg, m.viewport)
		cmds = append(cmds, cmd)

	case EmojiSelectedMsg:
		m.dispatch(chatbox.EmojiPicked{Glyph: msg.Glyph})
		if m.state.Picker.IsOpen() {
			m.openPicker()
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	default:
		var cmd tea.Cmd
		if m.state.Picker.IsOpen() {
			m.picker, cmd = m.picker.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) setTerminalSize(width, height int) {
	m.termWidth, m.termHeight = width, height
	if m.ready {
		return
	}

	rect := chatbox.Rect{
		Width:  m.cfg.Width.Resolve(width),
		Height: m.cfg.Height.Resolve(height),
	}
	m.state.Frame = chatbox.NewFrame(rect, m.cfg.Bounds())
	m.ready = true

	log.Debug().
		Int("terminalWidth", width).
		Int("terminalHeight", height).
		Interface("frame", m.state.Frame.Rect()).
		Msg("Sized chat frame")

	m.applyLayout()
	m.refreshTranscript()
	m.viewport.GotoBottom()
}

// dispatch runs ev through the reducer, mirrors the draft into the textarea
// and hands the effects to the listener methods below.
func (m *Model) dispatch(ev chatbox.Event) {
	var effects []chatbox.Effect
	m.state, effects = chatbox.Reduce(m.state, ev)
	if draft := m.state.Composer.Draft(); m.input.Value() != draft {
		m.input.SetValue(draft)
	}
	chatbox.Notify(effects, m)
}

func (m *Model) OnAppend(msg chatbox.Message) {
	log.Debug().
		Str("id", msg.ID.String()).
		Str("sender", msg.Sender).
		Int("transcriptLen", m.state.Transcript.Len()).
		Msg("Message appended")

	m.refreshTranscript()
	var cmd tea.Cmd
	m.scroll, cmd = m.scroll.ScrollToBottom(m.viewport)
	m.pending = append(m.pending, cmd)
}

func (m *Model) OnDragUpdate(r chatbox.Rect) {
	log.Debug().Interface("frame", r).Msg("Frame resized")
	m.applyLayout()
	m.refreshTranscript()
}

func (m *Model) OnOutsideInteraction() {
	log.Debug().Msg("Emoji picker dismissed by outside interaction")
}

func (m *Model) OnPickerChanged(open bool) {
	if open {
		m.openPicker()
		return
	}
	m.picker = EmojiPicker{}
	m.pending = append(m.pending, m.input.Focus())
}

func (m *Model) openPicker() {
	l := computeLayout(m.state.Frame.Rect())
	m.picker = NewEmojiPicker(m.state.Picker.Recent(), l.inner.Width)
	m.input.Blur()
	m.pending = append(m.pending, m.picker.Init())
}

func (m *Model) applyLayout() {
	l := computeLayout(m.state.Frame.Rect())
	m.viewport.Width = l.inner.Width
	m.viewport.Height = l.viewportHeight
	m.input.SetWidth(l.inputWidth)
	m.help.Width = l.inner.Width
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(RenderTranscript(m.state.Transcript.Messages(), m.viewport.Width))
}

func (m *Model) setStatus(text string, isError bool) {
	m.status, m.statusError = text, isError
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.setStatus("", false)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.TogglePicker):
		m.dispatch(chatbox.PickerToggled{})
		return nil
	}

	if m.state.Picker.IsOpen() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dispatch(chatbox.PickerDismissed{Reason: chatbox.DismissEscape})
			return nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Submit, m.keys.Send):
		m.submit()
		return nil
	case key.Matches(msg, m.keys.CopyLast):
		m.copyLast()
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.scroll = m.scroll.Cancel()
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.scroll = m.scroll.Cancel()
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return nil
	case key.Matches(msg, m.keys.GrowWidth):
		m.nudge(chatbox.HandleE, 1, 0)
		return nil
	case key.Matches(msg, m.keys.ShrinkWidth):
		m.nudge(chatbox.HandleE, -1, 0)
		return nil
	case key.Matches(msg, m.keys.GrowHeight):
		m.nudge(chatbox.HandleS, 0, 1)
		return nil
	case key.Matches(msg, m.keys.ShrinkHeight):
		m.nudge(chatbox.HandleS, 0, -1)
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.dispatch(chatbox.DraftChanged{Text: after})
	}
	return cmd
}

func (m *Model) submit() {
	before := m.state.Transcript.Len()
	m.dispatch(chatbox.SubmitRequested{At: m.now()})
	if m.state.Transcript.Len() == before {
		log.Debug().Msg("Ignoring blank submission")
	}
}

func (m *Model) copyLast() {
	last, ok := m.state.Transcript.Last()
	if !ok {
		return
	}
	if err := m.copyText(PlainBody(last.Body)); err != nil {
		log.Warn().Err(err).Msg("Could not copy message to clipboard")
		m.setStatus("copy failed: "+err.Error(), true)
		return
	}
	m.setStatus("copied message from "+SanitizeLine(last.Sender), false)
}

// nudge resizes by one step through the same gesture path a mouse drag uses.
func (m *Model) nudge(h chatbox.Handle, dx, dy int) {
	r := m.state.Frame.Rect()
	x, y := r.X+r.Width-1, r.Y+r.Height-1
	m.dispatch(chatbox.DragStarted{Handle: h, X: x, Y: y})
	m.dispatch(chatbox.DragMoved{X: x + dx, Y: y + dy})
	m.dispatch(chatbox.DragEnded{})
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.ready {
		return nil
	}

	if _, dragging := m.state.Frame.Dragging(); dragging {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.dispatch(chatbox.DragMoved{X: msg.X, Y: msg.Y})
		case tea.MouseActionRelease:
			m.dispatch(chatbox.DragMoved{X: msg.X, Y: msg.Y})
			m.dispatch(chatbox.DragEnded{})
		}
		return nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		m.scroll = m.scroll.Cancel()
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	l := computeLayout(m.state.Frame.Rect())
	if m.state.Picker.IsOpen() {
		switch {
		case m.popoverRect(l).Contains(msg.X, msg.Y):
			return nil
		case l.emojiButton.Contains(msg.X, msg.Y):
			m.dispatch(chatbox.PickerToggled{})
			return nil
		}
		m.dispatch(chatbox.PickerDismissed{Reason: chatbox.DismissOutside})
	}

	if h := m.state.Frame.HandleAt(msg.X, msg.Y); h != chatbox.HandleNone {
		m.dispatch(chatbox.DragStarted{Handle: h, X: msg.X, Y: msg.Y})
		return nil
	}

	switch {
	case l.emojiButton.Contains(msg.X, msg.Y):
		m.dispatch(chatbox.PickerToggled{})
	case l.sendButton.Contains(msg.X, msg.Y):
		m.submit()
	}
	return nil
}

func (m Model) popoverRect(l layout) chatbox.Rect {
	v := m.picker.View()
	w, h := lipgloss.Width(v), lipgloss.Height(v)
	x, y := l.popoverOrigin(w, h)
	return chatbox.Rect{X: x, Y: y, Width: w, Height: h}
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}

	r := m.state.Frame.Rect()
	l := computeLayout(r)

	style := frameStyle
	if _, dragging := m.state.Frame.Dragging(); dragging {
		style = frameDraggingStyle
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.cfg.Title, m.cfg.Subtitle, l.inner.Width),
		separator(l.inner.Width),
		m.viewport.View(),
		separator(l.inner.Width),
		m.renderComposer(l),
		m.renderStatus(l.inner.Width),
	)
	box := style.
		Width(l.inner.Width).
		Height(l.inner.Height).
		MaxWidth(r.Width).
		MaxHeight(r.Height).
		Render(body)
	placed := lipgloss.NewStyle().MarginLeft(r.X).MarginTop(r.Y).Render(box)

	if !m.state.Picker.IsOpen() {
		return placed
	}

	popover := m.picker.View()
	x, y := l.popoverOrigin(lipgloss.Width(popover), lipgloss.Height(popover))
	return overlay.New(
		&staticView{content: popover},
		&staticView{content: placed},
		overlay.Left,
		overlay.Top,
		x,
		y,
	).View()
}

func (m Model) renderComposer(l layout) string {
	input := lipgloss.NewStyle().
		Width(l.inputWidth).
		MaxWidth(l.inputWidth).
		Render(m.input.View())

	emojiStyle := buttonStyle
	if m.state.Picker.IsOpen() {
		emojiStyle = buttonActiveStyle
	}
	buttons := " " + emojiStyle.Render(emojiButtonLabel) + " " + buttonStyle.Render(sendButtonLabel)
	return lipgloss.JoinHorizontal(lipgloss.Top, input, buttons)
}

func (m Model) renderStatus(width int) string {
	if m.status != "" {
		style := statusStyle
		if m.statusError {
			style = errorStyle
		}
		return style.Render(truncate(m.status, width))
	}
	return truncate(m.help.ShortHelpView(m.keys.ShortHelp()), width)
}
