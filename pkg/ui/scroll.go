package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const scrollFPS = 60

type scrollFrameMsg struct {
	gen int
}

// ScrollController animates the transcript viewport towards its bottom with
// a spring. Each ScrollToBottom starts a new generation; frames belonging to
// an older generation are dropped. The bottom is re-read from the viewport on
// every frame, so content reflowed mid-animation is still reached.
type ScrollController struct {
	spring harmonica.Spring
	gen    int
	active bool
	pos    float64
	vel    float64
}

func bottomOffset(vp viewport.Model) float64 {
	return float64(max(0, vp.TotalLineCount()-vp.Height))
}

func NewScrollController() ScrollController {
	return ScrollController{
		spring: harmonica.NewSpring(harmonica.FPS(scrollFPS), 6.0, 1.0),
	}
}

func (s ScrollController) Active() bool {
	return s.active
}

func (s ScrollController) ScrollToBottom(vp viewport.Model) (ScrollController, tea.Cmd) {
	s.gen++
	s.active = true
	s.pos = float64(vp.YOffset)
	s.vel = 0
	return s, s.frame()
}

// Cancel stops an in-flight animation, e.g. when the user scrolls manually.
func (s ScrollController) Cancel() ScrollController {
	s.gen++
	s.active = false
	s.vel = 0
	return s
}

func (s ScrollController) frame() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}

func (s ScrollController) Update(msg scrollFrameMsg, vp viewport.Model) (ScrollController, viewport.Model, tea.Cmd) {
	if !s.active || msg.gen != s.gen {
		return s, vp, nil
	}

	target := bottomOffset(vp)
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	if math.Abs(target-s.pos) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel, s.active = target, 0, false
		vp.SetYOffset(int(target))
		return s, vp, nil
	}

	vp.SetYOffset(int(math.Round(s.pos)))
	return s, vp, s.frame()
}
