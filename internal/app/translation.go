package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"hangulpad/internal/engine"
	"hangulpad/internal/layout"
	"hangulpad/internal/types"
)

const (
	asciiBackspace = 0x08
	asciiDelete    = 0x7f
)

// Translate replays text as keystrokes on lay. BS and DEL act as backspace.
func Translate(lay *layout.Layout, text string, opts engine.Options) (string, error) {
	session := NewSession(lay, types.ModeHangul, opts)
	if err := feed(session, text); err != nil {
		return "", err
	}
	return session.TakeLine(), nil
}

func feed(session *Session, text string) error {
	for _, ch := range text {
		var err error
		switch ch {
		case asciiBackspace, asciiDelete:
			err = session.Backspace()
		default:
			err = session.TypeRune(ch)
		}
		if err != nil {
			return fmt.Errorf("apply %q: %w", ch, err)
		}
	}
	return nil
}

// TranslateStream translates r line by line. Compositions never span lines.
func TranslateStream(ctx context.Context, r io.Reader, w io.Writer, lay *layout.Layout, opts engine.Options) error {
	session := NewSession(lay, types.ModeHangul, opts)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(w)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := feed(session, scanner.Text()); err != nil {
			return err
		}
		if _, err := writer.WriteString(session.TakeLine()); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	return scanner.Err()
}
