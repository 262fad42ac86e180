package main

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/gogpu/signpad"
)

// toastDuration is how long a notice stays on screen.
const toastDuration = 3 * time.Second

var severityColors = map[signpad.Severity]color.Color{
	signpad.SeverityInfo:    color.NRGBA{R: 0x1e, G: 0x66, B: 0xc8, A: 0xff},
	signpad.SeveritySuccess: color.NRGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff},
	signpad.SeverityWarning: color.NRGBA{R: 0xc8, G: 0x7a, B: 0x00, A: 0xff},
	signpad.SeverityError:   color.NRGBA{R: 0xc8, G: 0x1e, B: 0x1e, A: 0xff},
}

// statusBar shows pad notices as short-lived toasts.
type statusBar struct {
	label *canvas.Text

	mu  sync.Mutex
	gen int
}

func newStatusBar() *statusBar {
	t := canvas.NewText("", color.Black)
	t.Alignment = fyne.TextAlignCenter
	return &statusBar{label: t}
}

// Notify implements signpad.Notifier. It is called from the pad worker.
func (s *statusBar) Notify(n signpad.Notice) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	signpad.LogNotifier{}.Notify(n)
	fyne.Do(func() {
		s.label.Text = n.Message
		s.label.Color = severityColors[n.Severity]
		s.label.Refresh()
	})
	time.AfterFunc(toastDuration, func() { s.dismiss(gen) })
}

// dismiss clears the toast unless a newer one replaced it.
func (s *statusBar) dismiss(gen int) {
	s.mu.Lock()
	current := s.gen == gen
	s.mu.Unlock()
	if !current {
		return
	}
	fyne.Do(func() {
		s.label.Text = ""
		s.label.Refresh()
	})
}
