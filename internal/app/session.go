package app

import (
	"log/slog"

	"hangulpad/internal/buffer"
	"hangulpad/internal/engine"
	"hangulpad/internal/layout"
	"hangulpad/internal/types"
)

// Session owns one text field and the engine composing into it.
type Session struct {
	engine *engine.Engine
	buf    *buffer.Buffer
	mode   types.InputMode
	logger *slog.Logger
}

func NewSession(lay *layout.Layout, mode types.InputMode, opts engine.Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		engine: engine.NewEngine(lay, opts),
		buf:    buffer.New(""),
		mode:   mode,
		logger: logger,
	}
}

func (s *Session) Mode() types.InputMode { return s.mode }

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Engine() *engine.Engine { return s.engine }

func (s *Session) Text() string { return s.buf.String() }

// ToggleMode finalizes any composing syllable and switches modes.
func (s *Session) ToggleMode() types.InputMode {
	s.engine.Commit()
	s.mode = s.mode.Toggle()
	s.logger.Debug("mode changed", "mode", s.mode.String())
	return s.mode
}

// TypeRune feeds one typed character. Characters the layout does not map are
// inserted literally after the composing syllable is committed.
func (s *Session) TypeRune(ch rune) error {
	if s.mode == types.ModeHangul {
		res := s.engine.Key(s.buf, layout.Key{Char: ch})
		if res.Handled {
			return s.buf.Apply(res.Edits, res.Caret)
		}
	}
	s.engine.Commit()
	s.buf.InsertText(string(ch))
	return nil
}

// Backspace undoes the last jamo while composing and deletes the character
// before the caret otherwise.
func (s *Session) Backspace() error {
	res := s.engine.Backspace(s.buf)
	if res.Handled {
		return s.buf.Apply(res.Edits, res.Caret)
	}
	s.buf.DeleteBackward()
	return nil
}

// MoveCaret commits the composition and moves the caret by delta characters.
func (s *Session) MoveCaret(delta int) {
	s.engine.Commit()
	s.buf.SetCaret(s.buf.Caret() + delta)
}

func (s *Session) Commit() { s.engine.Commit() }

// TakeLine commits, returns the field contents and clears the field.
func (s *Session) TakeLine() string {
	s.engine.Commit()
	text := s.buf.String()
	s.buf.Clear()
	return text
}
