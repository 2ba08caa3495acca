package buffer

import (
	"errors"
	"testing"
)

func TestApplyEdits(t *testing.T) {
	b := New("ab")
	b.SetCaret(1)

	if err := b.Apply([]Edit{Insert(1, '한'), Replace(0, 'x')}, 2); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if b.String() != "x한b" || b.Caret() != 2 {
		t.Fatalf("unexpected buffer %q caret %d", b.String(), b.Caret())
	}

	if err := b.Apply([]Edit{Delete(1)}, 1); err != nil {
		t.Fatalf("apply delete: %v", err)
	}
	if b.String() != "xb" || b.Caret() != 1 {
		t.Fatalf("unexpected buffer %q caret %d", b.String(), b.Caret())
	}
}

func TestApplyInsertAtEnd(t *testing.T) {
	b := New("")
	if err := b.Apply([]Edit{Insert(0, 'ㄱ')}, 1); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := b.Apply([]Edit{Replace(0, '한'), Insert(1, 'ㄱ')}, 2); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if b.String() != "한ㄱ" || b.Caret() != 2 {
		t.Fatalf("unexpected buffer %q caret %d", b.String(), b.Caret())
	}
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	b := New("ab")
	err := b.Apply([]Edit{Replace(0, 'x'), Replace(2, 'y')}, 1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
	if b.String() != "ab" {
		t.Fatalf("expected rejected batch to leave buffer untouched, got %q", b.String())
	}
	if err := b.Apply([]Edit{Delete(-1)}, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range error for negative delete, got %v", err)
	}
}

func TestInsertTextAndDeleteBackward(t *testing.T) {
	b := New("가나")
	b.SetCaret(1)
	b.InsertText(" 1")
	if b.String() != "가 1나" || b.Caret() != 3 {
		t.Fatalf("unexpected buffer %q caret %d", b.String(), b.Caret())
	}
	if !b.DeleteBackward() || b.String() != "가 나" {
		t.Fatalf("unexpected buffer after delete %q", b.String())
	}
	b.SetCaret(-5)
	if b.DeleteBackward() {
		t.Fatalf("expected no deletion at start of text")
	}
	b.Clear()
	if b.Len() != 0 || b.Caret() != 0 {
		t.Fatalf("expected empty buffer after clear")
	}
}

func TestCaretColumn(t *testing.T) {
	b := New("a한ㄱ")
	if col := b.CaretColumn(); col != 5 {
		t.Fatalf("expected caret column 5, got %d", col)
	}
	b.SetCaret(1)
	if col := b.CaretColumn(); col != 1 {
		t.Fatalf("expected caret column 1, got %d", col)
	}
}
