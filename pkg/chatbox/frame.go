package chatbox

import (
	"github.com/pkg/errors"
)

// Handle identifies the edge or corner a resize gesture grabbed.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

var handleNames = map[Handle]string{
	HandleNone: "none",
	HandleN:    "n",
	HandleS:    "s",
	HandleE:    "e",
	HandleW:    "w",
	HandleNE:   "ne",
	HandleNW:   "nw",
	HandleSE:   "se",
	HandleSW:   "sw",
}

func (h Handle) String() string {
	if s, ok := handleNames[h]; ok {
		return s
	}
	return "unknown"
}

func (h Handle) west() bool  { return h == HandleW || h == HandleNW || h == HandleSW }
func (h Handle) east() bool  { return h == HandleE || h == HandleNE || h == HandleSE }
func (h Handle) north() bool { return h == HandleN || h == HandleNE || h == HandleNW }
func (h Handle) south() bool { return h == HandleS || h == HandleSE || h == HandleSW }

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Bounds limits the frame size on each axis independently.
type Bounds struct {
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
}

func (b Bounds) Validate() error {
	if b.MinWidth <= 0 || b.MinHeight <= 0 {
		return errors.Errorf("frame minimum must be positive, got %dx%d", b.MinWidth, b.MinHeight)
	}
	if b.MaxWidth < b.MinWidth || b.MaxHeight < b.MinHeight {
		return errors.Errorf("frame maximum %dx%d is below minimum %dx%d",
			b.MaxWidth, b.MaxHeight, b.MinWidth, b.MinHeight)
	}
	return nil
}

// Clamp pins width and height into the bounds.
func (b Bounds) Clamp(width, height int) (int, int) {
	return clamp(width, b.MinWidth, b.MaxWidth), clamp(height, b.MinHeight, b.MaxHeight)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Frame is the widget's geometry together with the resize gesture in
// progress, if any.
type Frame struct {
	rect   Rect
	bounds Bounds

	handle   Handle
	start    Rect
	anchorX  int
	anchorY  int
	dragging bool
}

// NewFrame clamps rect into bounds.
func NewFrame(rect Rect, bounds Bounds) Frame {
	rect.Width, rect.Height = bounds.Clamp(rect.Width, rect.Height)
	rect.X = max(rect.X, 0)
	rect.Y = max(rect.Y, 0)
	return Frame{rect: rect, bounds: bounds}
}

func (f Frame) Rect() Rect {
	return f.rect
}

func (f Frame) Bounds() Bounds {
	return f.bounds
}

// Dragging reports the handle of the active gesture.
func (f Frame) Dragging() (Handle, bool) {
	return f.handle, f.dragging
}

// HandleAt maps a cell on the frame border to its handle. Corners win over
// edges; interior and outside cells return HandleNone.
func (f Frame) HandleAt(x, y int) Handle {
	r := f.rect
	if !r.Contains(x, y) {
		return HandleNone
	}
	left, right := x == r.X, x == r.X+r.Width-1
	top, bottom := y == r.Y, y == r.Y+r.Height-1

	switch {
	case top && left:
		return HandleNW
	case top && right:
		return HandleNE
	case bottom && left:
		return HandleSW
	case bottom && right:
		return HandleSE
	case top:
		return HandleN
	case bottom:
		return HandleS
	case left:
		return HandleW
	case right:
		return HandleE
	}
	return HandleNone
}

// BeginDrag starts a gesture on handle h with the pointer at (x, y).
func (f Frame) BeginDrag(h Handle, x, y int) Frame {
	if h == HandleNone {
		return f
	}
	f.handle = h
	f.start = f.rect
	f.anchorX, f.anchorY = x, y
	f.dragging = true
	return f
}

// DragTo resizes the frame for a pointer at (x, y). Each axis is clamped on
// its own, so an out-of-range request pins that dimension to the bound and
// still applies the other one. West and north handles keep the opposite edge
// in place.
func (f Frame) DragTo(x, y int) Frame {
	if !f.dragging {
		return f
	}
	dx, dy := x-f.anchorX, y-f.anchorY
	s := f.start
	r := s

	switch {
	case f.handle.east():
		r.Width = clamp(s.Width+dx, f.bounds.MinWidth, f.bounds.MaxWidth)
	case f.handle.west():
		r.Width = clamp(s.Width-dx, f.bounds.MinWidth, f.bounds.MaxWidth)
		r.X = max(s.X+s.Width-r.Width, 0)
	}

	switch {
	case f.handle.south():
		r.Height = clamp(s.Height+dy, f.bounds.MinHeight, f.bounds.MaxHeight)
	case f.handle.north():
		r.Height = clamp(s.Height-dy, f.bounds.MinHeight, f.bounds.MaxHeight)
		r.Y = max(s.Y+s.Height-r.Height, 0)
	}

	f.rect = r
	return f
}

// EndDrag finishes the gesture; the last computed size stays.
func (f Frame) EndDrag() Frame {
	f.handle = HandleNone
	f.dragging = false
	return f
}
