package app

import (
	"fmt"
	"io"

	"github.com/eiannone/keyboard"
	"github.com/rivo/uniseg"

	"hangulpad/internal/types"
)

// Pad renders a Session on a single terminal line and maps keyboard events
// onto it.
type Pad struct {
	session *Session
	out     io.Writer
}

func NewPad(session *Session, out io.Writer) *Pad {
	return &Pad{session: session, out: out}
}

// Handle processes one key event and redraws. It reports true when the user
// asked to quit.
func (p *Pad) Handle(ch rune, key keyboard.Key) (bool, error) {
	var err error
	if ch != 0 {
		err = p.session.TypeRune(ch)
		return false, p.finish(err)
	}
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		p.session.Commit()
		_, err = io.WriteString(p.out, "\r\n")
		return true, err
	case keyboard.KeyCtrlSpace:
		p.session.ToggleMode()
	case keyboard.KeySpace:
		err = p.session.TypeRune(' ')
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		err = p.session.Backspace()
	case keyboard.KeyArrowLeft:
		p.session.MoveCaret(-1)
	case keyboard.KeyArrowRight:
		p.session.MoveCaret(1)
	case keyboard.KeyEnter:
		p.session.TakeLine()
		_, err = io.WriteString(p.out, "\r\n")
	}
	return false, p.finish(err)
}

func (p *Pad) finish(err error) error {
	if err != nil {
		return err
	}
	return p.redraw()
}

func (p *Pad) prompt() string {
	if p.session.Mode() == types.ModeHangul {
		return "[한] "
	}
	return "[EN] "
}

func (p *Pad) redraw() error {
	prompt := p.prompt()
	column := uniseg.StringWidth(prompt) + p.session.Buffer().CaretColumn()
	_, err := fmt.Fprintf(p.out, "\r\033[K%s%s\r\033[%dC", prompt, p.session.Text(), column)
	return err
}

// Run reads keys until the user quits. The terminal is put in raw mode for the
// duration.
func (p *Pad) Run() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	if err := p.redraw(); err != nil {
		return err
	}
	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		quit, err := p.Handle(ch, key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
