package chatbox

import "time"

// State is everything a chat window instance owns.
type State struct {
	Transcript Transcript
	Composer   Composer
	Picker     Picker
	Frame      Frame
}

// Event is a discrete input to Reduce.
type Event interface {
	isEvent()
}

// DraftChanged replaces the draft, typically after a keystroke.
type DraftChanged struct {
	Text string
}

// SubmitRequested commits the draft at the given wall-clock time.
type SubmitRequested struct {
	At time.Time
}

// EmojiPicked carries one selection from the picker.
type EmojiPicked struct {
	Glyph string
}

// PickerToggled flips the picker from its trigger.
type PickerToggled struct{}

// DismissReason says why the picker closed.
type DismissReason int

const (
	DismissToggle DismissReason = iota
	DismissOutside
	DismissEscape
	DismissPicked
)

// PickerDismissed closes the picker without a selection.
type PickerDismissed struct {
	Reason DismissReason
}

// DragStarted begins a resize gesture on Handle with the pointer at X, Y.
type DragStarted struct {
	Handle Handle
	X, Y   int
}

// DragMoved reports the pointer position during a resize gesture.
type DragMoved struct {
	X, Y int
}

// DragEnded releases the resize gesture.
type DragEnded struct{}

func (DraftChanged) isEvent()    {}
func (SubmitRequested) isEvent() {}
func (EmojiPicked) isEvent()     {}
func (PickerToggled) isEvent()   {}
func (PickerDismissed) isEvent() {}
func (DragStarted) isEvent()     {}
func (DragMoved) isEvent()       {}
func (DragEnded) isEvent()       {}

// Effect is something Reduce asks the presentation layer to do.
type Effect interface {
	isEffect()
}

// MessageAppended is emitted after the transcript grew. It is the only
// effect that should move the transcript's scroll position.
type MessageAppended struct {
	Message Message
}

// FrameResized is emitted whenever a drag tick changed the frame rectangle.
type FrameResized struct {
	Rect Rect
}

type PickerOpened struct{}

type PickerClosed struct {
	Reason DismissReason
}

func (MessageAppended) isEffect() {}
func (FrameResized) isEffect()    {}
func (PickerOpened) isEffect()    {}
func (PickerClosed) isEffect()    {}

// Reduce applies ev to s. It never blocks and never fails: blank submits,
// picks from a closed picker and stray drag events are ignored.
func Reduce(s State, ev Event) (State, []Effect) {
	var effects []Effect

	switch e := ev.(type) {
	case DraftChanged:
		s.Composer = s.Composer.SetDraft(e.Text)

	case SubmitRequested:
		var msg Message
		var ok bool
		s.Composer, s.Transcript, msg, ok = s.Composer.Submit(s.Transcript, e.At)
		if ok {
			effects = append(effects, MessageAppended{Message: msg})
		}

	case EmojiPicked:
		picker, ok := s.Picker.Pick(e.Glyph)
		if !ok {
			break
		}
		s.Picker = picker
		s.Composer = s.Composer.InsertEmoji(e.Glyph)
		if !s.Picker.IsOpen() {
			effects = append(effects, PickerClosed{Reason: DismissPicked})
		}

	case PickerToggled:
		s.Picker = s.Picker.Toggle()
		if s.Picker.IsOpen() {
			effects = append(effects, PickerOpened{})
		} else {
			effects = append(effects, PickerClosed{Reason: DismissToggle})
		}

	case PickerDismissed:
		if !s.Picker.IsOpen() {
			break
		}
		s.Picker = s.Picker.Dismiss()
		effects = append(effects, PickerClosed{Reason: e.Reason})

	case DragStarted:
		s.Frame = s.Frame.BeginDrag(e.Handle, e.X, e.Y)

	case DragMoved:
		before := s.Frame.Rect()
		s.Frame = s.Frame.DragTo(e.X, e.Y)
		if after := s.Frame.Rect(); after != before {
			effects = append(effects, FrameResized{Rect: after})
		}

	case DragEnded:
		s.Frame = s.Frame.EndDrag()
	}

	return s, effects
}

// AppendListener is told about every message added to the transcript.
type AppendListener interface {
	OnAppend(Message)
}

// DragUpdateListener receives the clamped frame rectangle on every drag tick
// that changed it.
type DragUpdateListener interface {
	OnDragUpdate(Rect)
}

// OutsideInteractionListener is told when the picker was closed by an
// interaction outside its bounds.
type OutsideInteractionListener interface {
	OnOutsideInteraction()
}

// PickerListener follows the picker opening and closing.
type PickerListener interface {
	OnPickerChanged(open bool)
}

// Notify routes effects to whichever listener interfaces l implements.
func Notify(effects []Effect, l any) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case MessageAppended:
			if al, ok := l.(AppendListener); ok {
				al.OnAppend(e.Message)
			}
		case FrameResized:
			if dl, ok := l.(DragUpdateListener); ok {
				dl.OnDragUpdate(e.Rect)
			}
		case PickerOpened:
			if pl, ok := l.(PickerListener); ok {
				pl.OnPickerChanged(true)
			}
		case PickerClosed:
			if e.Reason == DismissOutside {
				if ol, ok := l.(OutsideInteractionListener); ok {
					ol.OnOutsideInteraction()
				}
			}
			if pl, ok := l.(PickerListener); ok {
				pl.OnPickerChanged(false)
			}
		}
	}
}
