package chatbox

// MaxRecent is how many recently picked emojis the picker remembers.
const MaxRecent = 8

// Picker is the open/closed state of the emoji popover.
//
// Picking an emoji leaves the picker open unless it was created with
// autoClose.
type Picker struct {
	open      bool
	autoClose bool
	recent    []string
}

func NewPicker(autoClose bool) Picker {
	return Picker{autoClose: autoClose}
}

func (p Picker) IsOpen() bool {
	return p.open
}

func (p Picker) Toggle() Picker {
	p.open = !p.open
	return p
}

// Dismiss closes the picker without a selection.
func (p Picker) Dismiss() Picker {
	p.open = false
	return p
}

// Pick records a selection. Nothing is picked from a closed picker or with
// an empty glyph, in which case ok is false.
func (p Picker) Pick(glyph string) (Picker, bool) {
	if !p.open || glyph == "" {
		return p, false
	}

	recent := make([]string, 0, MaxRecent)
	recent = append(recent, glyph)
	for _, g := range p.recent {
		if g == glyph {
			continue
		}
		if len(recent) == MaxRecent {
			break
		}
		recent = append(recent, g)
	}
	p.recent = recent

	if p.autoClose {
		p.open = false
	}
	return p, true
}

// Recent returns recently picked glyphs, most recent first.
func (p Picker) Recent() []string {
	out := make([]string, len(p.recent))
	copy(out, p.recent)
	return out
}
