package term

import (
	"nvicshell/hal"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Service renders VT100 output onto the HAL framebuffer.
//
// A nil Service, or one built on a board without a display, accepts and
// discards everything written to it.
type Service struct {
	fb    hal.Framebuffer
	d     *fbDisplay
	t     *tinyterm.Terminal
	dirty bool
}

// New returns nil when disp has no framebuffer.
func New(disp hal.Display) *Service {
	if disp == nil {
		return nil
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil
	}
	s := &Service{fb: fb, d: newFBDisplay(fb)}
	s.reset()
	return s
}

func (s *Service) Write(p []byte) (int, error) {
	if s == nil {
		return len(p), nil
	}
	n, err := s.t.Write(p)
	s.dirty = true
	return n, err
}

func (s *Service) Clear() error {
	if s == nil {
		return nil
	}
	s.reset()
	s.dirty = true
	return nil
}

// Flush presents the framebuffer if anything was drawn since the last call.
func (s *Service) Flush() error {
	if s == nil || !s.dirty {
		return nil
	}
	s.dirty = false
	return s.d.Display()
}

func (s *Service) reset() {
	s.fb.ClearRGB(0, 0, 0)
	s.t = tinyterm.NewTerminal(s.d)
	s.t.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
}
