package buffer

import "fmt"

type EditKind int

const (
	EditInsert EditKind = iota
	EditReplace
	EditDelete
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditReplace:
		return "replace"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is one command against a text field. Every edit touches exactly one
// character position; At is a rune offset.
type Edit struct {
	Kind EditKind
	At   int
	Char rune
}

func Insert(at int, ch rune) Edit { return Edit{Kind: EditInsert, At: at, Char: ch} }

func Replace(at int, ch rune) Edit { return Edit{Kind: EditReplace, At: at, Char: ch} }

func Delete(at int) Edit { return Edit{Kind: EditDelete, At: at} }

func (e Edit) String() string {
	if e.Kind == EditDelete {
		return fmt.Sprintf("delete@%d", e.At)
	}
	return fmt.Sprintf("%s@%d(%c)", e.Kind, e.At, e.Char)
}
