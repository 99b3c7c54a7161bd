package chatbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestState() State {
	return State{
		Transcript: NewTranscript("me", WithSeed(seedRecords)),
		Picker:     NewPicker(false),
		Frame:      NewFrame(Rect{Width: 80, Height: 24}, Bounds{MinWidth: 30, MinHeight: 10, MaxWidth: 5000, MaxHeight: 1000}),
	}
}

type recordingListener struct {
	appended []Message
	resized  []Rect
	outside  int
	picker   []bool
}

func (l *recordingListener) OnAppend(m Message)        { l.appended = append(l.appended, m) }
func (l *recordingListener) OnDragUpdate(r Rect)       { l.resized = append(l.resized, r) }
func (l *recordingListener) OnOutsideInteraction()     { l.outside++ }
func (l *recordingListener) OnPickerChanged(open bool) { l.picker = append(l.picker, open) }

func TestReduce_SubmitScenario(t *testing.T) {
	s := newTestState()
	now := time.Date(2026, 10, 18, 10, 15, 0, 0, time.Local)

	s, effects := Reduce(s, DraftChanged{Text: "Hello"})
	require.Empty(t, effects)

	s, effects = Reduce(s, SubmitRequested{At: now})
	require.Len(t, effects, 1)

	appended, ok := effects[0].(MessageAppended)
	require.True(t, ok)
	require.Equal(t, 3, s.Transcript.Len())

	last, _ := s.Transcript.Last()
	require.Equal(t, appended.Message, last)
	require.True(t, last.Self)
	require.Equal(t, "Hello", last.Body)
	require.Equal(t, now.Format(DefaultTimeLayout), last.Time)
	require.Equal(t, "", s.Composer.Draft())
}

func TestReduce_BlankSubmitIsSilent(t *testing.T) {
	s := newTestState()

	s, _ = Reduce(s, DraftChanged{Text: "   "})
	s, effects := Reduce(s, SubmitRequested{At: time.Now()})

	require.Empty(t, effects)
	require.Equal(t, 2, s.Transcript.Len())
	require.Equal(t, "   ", s.Composer.Draft())
}

func TestReduce_MultilineDraft(t *testing.T) {
	s := newTestState()

	s, _ = Reduce(s, DraftChanged{Text: "a\nb"})
	s, _ = Reduce(s, SubmitRequested{At: time.Now()})

	last, _ := s.Transcript.Last()
	require.Equal(t, "a"+LineBreak+"b", last.Body)
}

func TestReduce_EmojiPickKeepsPickerOpen(t *testing.T) {
	s := newTestState()

	s, effects := Reduce(s, PickerToggled{})
	require.Equal(t, []Effect{PickerOpened{}}, effects)

	s, _ = Reduce(s, DraftChanged{Text: "hi"})
	s, effects = Reduce(s, EmojiPicked{Glyph: "🙂"})

	require.Empty(t, effects)
	require.True(t, s.Picker.IsOpen())
	require.Equal(t, "hi🙂", s.Composer.Draft())
	require.Equal(t, []string{"🙂"}, s.Picker.Recent())
}

func TestReduce_EmojiPickAutoClose(t *testing.T) {
	s := newTestState()
	s.Picker = NewPicker(true)

	s, _ = Reduce(s, PickerToggled{})
	s, effects := Reduce(s, EmojiPicked{Glyph: "👍"})

	require.Equal(t, []Effect{PickerClosed{Reason: DismissPicked}}, effects)
	require.False(t, s.Picker.IsOpen())
	require.Equal(t, "👍", s.Composer.Draft())
}

func TestReduce_EmojiPickWhileClosedIsIgnored(t *testing.T) {
	s := newTestState()

	s, effects := Reduce(s, EmojiPicked{Glyph: "🙂"})
	require.Empty(t, effects)
	require.Equal(t, "", s.Composer.Draft())
}

func TestReduce_DismissKeepsDraft(t *testing.T) {
	s := newTestState()
	s, _ = Reduce(s, DraftChanged{Text: "draft"})
	s, _ = Reduce(s, PickerToggled{})

	s, effects := Reduce(s, PickerDismissed{Reason: DismissOutside})
	require.Equal(t, []Effect{PickerClosed{Reason: DismissOutside}}, effects)
	require.False(t, s.Picker.IsOpen())
	require.Equal(t, "draft", s.Composer.Draft())

	// dismissing a closed picker emits nothing
	_, effects = Reduce(s, PickerDismissed{Reason: DismissEscape})
	require.Empty(t, effects)
}

func TestReduce_DragEmitsResizeOnlyOnChange(t *testing.T) {
	s := newTestState()
	r := s.Frame.Rect()
	x, y := r.Width-1, r.Height-1

	s, effects := Reduce(s, DragStarted{Handle: HandleSE, X: x, Y: y})
	require.Empty(t, effects)

	s, effects = Reduce(s, DragMoved{X: x + 5, Y: y + 2})
	require.Equal(t, []Effect{FrameResized{Rect: Rect{Width: 85, Height: 26}}}, effects)

	s, effects = Reduce(s, DragMoved{X: x + 5, Y: y + 2})
	require.Empty(t, effects)

	s, _ = Reduce(s, DragEnded{})
	_, dragging := s.Frame.Dragging()
	require.False(t, dragging)

	// moves after release do nothing
	_, effects = Reduce(s, DragMoved{X: 0, Y: 0})
	require.Empty(t, effects)
}

func TestReduce_OnlyAppendRequestsScroll(t *testing.T) {
	s := newTestState()
	events := []Event{
		DraftChanged{Text: "x"},
		PickerToggled{},
		EmojiPicked{Glyph: "🙂"},
		PickerDismissed{Reason: DismissEscape},
		DragStarted{Handle: HandleE, X: 79, Y: 3},
		DragMoved{X: 90, Y: 3},
		DragEnded{},
	}

	for _, ev := range events {
		var effects []Effect
		s, effects = Reduce(s, ev)
		for _, e := range effects {
			_, isAppend := e.(MessageAppended)
			require.False(t, isAppend, "event %T", ev)
		}
	}
}

func TestNotify_RoutesToListeners(t *testing.T) {
	l := &recordingListener{}
	msg := Message{Body: "x"}

	Notify([]Effect{
		MessageAppended{Message: msg},
		FrameResized{Rect: Rect{Width: 3, Height: 4}},
		PickerOpened{},
		PickerClosed{Reason: DismissOutside},
		PickerClosed{Reason: DismissEscape},
	}, l)

	require.Equal(t, []Message{msg}, l.appended)
	require.Equal(t, []Rect{{Width: 3, Height: 4}}, l.resized)
	require.Equal(t, 1, l.outside)
	require.Equal(t, []bool{true, false, false}, l.picker)
}

func TestNotify_IgnoresMissingInterfaces(t *testing.T) {
	require.NotPanics(t, func() {
		Notify([]Effect{MessageAppended{}, FrameResized{}, PickerOpened{}, PickerClosed{}}, struct{}{})
	})
}
