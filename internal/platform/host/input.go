package host

// Input is one frame of edge-triggered controls from a window host.
type Input struct {
	Flip       bool
	Pause      bool
	Restart    bool
	Screenshot bool
	Quit       bool
}

// Apply performs in against the session and reports whether the host should
// close. Screenshots land in shotDir; a failed one is logged and play goes on.
func (s *Session) Apply(in Input, shotDir string) (quit bool) {
	if in.Quit {
		s.Stop()
		return true
	}
	if in.Screenshot {
		if path, err := s.Screenshot(shotDir); err != nil {
			s.logger.Warn("screenshot failed", "error", err)
		} else {
			s.logger.Info("screenshot saved", "path", path)
		}
	}

	over := s.game.State().GameOver
	switch {
	case in.Restart && over:
		if err := s.Restart(); err != nil {
			s.logger.Warn("restart failed", "error", err)
		}
	case in.Pause && !over:
		s.TogglePause()
	case in.Flip:
		s.Flip()
	}
	return false
}
