package buffer

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"
)

var ErrOutOfRange = errors.New("buffer: edit out of range")

// Buffer is an in-memory text field: a rune slice and a caret between runes.
type Buffer struct {
	text  []rune
	caret int
}

func New(initial string) *Buffer {
	text := []rune(initial)
	return &Buffer{text: text, caret: len(text)}
}

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Caret() int { return b.caret }

func (b *Buffer) String() string { return string(b.text) }

// SetCaret clamps pos into the text.
func (b *Buffer) SetCaret(pos int) {
	switch {
	case pos < 0:
		b.caret = 0
	case pos > len(b.text):
		b.caret = len(b.text)
	default:
		b.caret = pos
	}
}

// Apply runs the edits in order and then moves the caret. It checks every
// edit first, so a rejected batch leaves the buffer as it was.
func (b *Buffer) Apply(edits []Edit, caret int) error {
	length := len(b.text)
	for _, edit := range edits {
		switch edit.Kind {
		case EditInsert:
			if edit.At < 0 || edit.At > length {
				return fmt.Errorf("%w: %s in text of %d", ErrOutOfRange, edit, length)
			}
			length++
		case EditReplace:
			if edit.At < 0 || edit.At >= length {
				return fmt.Errorf("%w: %s in text of %d", ErrOutOfRange, edit, length)
			}
		case EditDelete:
			if edit.At < 0 || edit.At >= length {
				return fmt.Errorf("%w: %s in text of %d", ErrOutOfRange, edit, length)
			}
			length--
		default:
			return fmt.Errorf("buffer: unknown edit kind %d", edit.Kind)
		}
	}

	for _, edit := range edits {
		switch edit.Kind {
		case EditInsert:
			b.text = append(b.text, 0)
			copy(b.text[edit.At+1:], b.text[edit.At:])
			b.text[edit.At] = edit.Char
		case EditReplace:
			b.text[edit.At] = edit.Char
		case EditDelete:
			b.text = append(b.text[:edit.At], b.text[edit.At+1:]...)
		}
	}
	b.SetCaret(caret)
	return nil
}

// InsertText types literal text at the caret.
func (b *Buffer) InsertText(text string) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	tail := append([]rune(nil), b.text[b.caret:]...)
	b.text = append(append(b.text[:b.caret], runes...), tail...)
	b.caret += len(runes)
}

// DeleteBackward removes the rune left of the caret.
func (b *Buffer) DeleteBackward() bool {
	if b.caret == 0 {
		return false
	}
	b.text = append(b.text[:b.caret-1], b.text[b.caret:]...)
	b.caret--
	return true
}

func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.caret = 0
}

// CaretColumn is the terminal cell column of the caret. Hangul syllables
// and compatibility jamo are wide and take two cells each.
func (b *Buffer) CaretColumn() int {
	return uniseg.StringWidth(string(b.text[:b.caret]))
}
