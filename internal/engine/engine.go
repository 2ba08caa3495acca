package engine

import (
	"io"
	"log/slog"

	"hangulpad/internal/buffer"
	"hangulpad/internal/hangul"
	"hangulpad/internal/layout"
)

// Field is the read-only view of a text field the engine needs to plan its
// edits. The engine never keeps a field past a single call.
type Field interface {
	Len() int
	Caret() int
}

// Result tells the caller how to update its field. When Handled is false
// the caller falls back to literal input or ordinary deletion.
type Result struct {
	Handled bool
	Edits   []buffer.Edit
	Caret   int
}

type Options struct {
	Logger *slog.Logger
	// Strict panics on internal invariant violations instead of logging
	// them and dropping the composition.
	Strict bool
}

// Engine composes one text field. It must not be shared between fields.
type Engine struct {
	layout    *layout.Layout
	automaton hangul.Automaton
	fragment  hangul.Fragment
	anchor    int
	hasAnchor bool
	strict    bool
	logger    *slog.Logger
}

func NewEngine(lay *layout.Layout, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		layout:    lay,
		automaton: lay.Automaton(),
		strict:    opts.Strict,
		logger:    logger,
	}
}

func (e *Engine) Layout() *layout.Layout { return e.layout }

// HasComposition reports whether a syllable is being composed, i.e. whether
// the next backspace belongs to the engine.
func (e *Engine) HasComposition() bool { return !e.fragment.Empty() }

func (e *Engine) Fragment() hangul.Fragment { return e.fragment }

func (e *Engine) Anchor() (int, bool) { return e.anchor, e.hasAnchor }

// Reset drops the fragment and anchor without touching the field. Whatever
// was composed stays in the field as typed.
func (e *Engine) Reset() {
	e.fragment = hangul.Fragment{}
	e.anchor = 0
	e.hasAnchor = false
}

// Commit finalizes the composing syllable in place.
func (e *Engine) Commit() {
	if e.HasComposition() {
		e.logger.Debug("commit", "fragment", e.fragment.String(), "anchor", e.anchor)
	}
	e.Reset()
}

// Key feeds one raw key event.
func (e *Engine) Key(field Field, key layout.Key) Result {
	jamo, ok := e.layout.Resolve(key)
	if !ok {
		e.logger.Debug("unmapped key", "key", string(key.Char), "shift", key.Shift)
		return unhandled(field)
	}

	step, err := e.automaton.Apply(e.fragment, jamo)
	if err != nil {
		return e.fail(field, "key", err)
	}
	result := e.mutate(field, step)
	e.logger.Debug("key",
		"key", string(key.Char),
		"jamo", jamo.String(),
		"action", step.Action.Kind.String(),
		"fragment", e.fragment.String(),
		"anchor", e.anchor,
	)
	return result
}

// Backspace peels one unit off the composing syllable. It is not handled when
// nothing is being composed or the field no longer holds the anchored
// character.
func (e *Engine) Backspace(field Field) Result {
	if !e.HasComposition() {
		return unhandled(field)
	}
	if !e.anchorValid(field) {
		e.logger.Warn("anchor lost, dropping composition", "anchor", e.anchor, "len", field.Len())
		e.Reset()
		return unhandled(field)
	}

	step, err := e.automaton.Backspace(e.fragment)
	if err != nil {
		return e.fail(field, "backspace", err)
	}
	result := e.mutate(field, step)
	e.logger.Debug("backspace",
		"action", step.Action.Kind.String(),
		"fragment", e.fragment.String(),
		"anchor", e.anchor,
	)
	return result
}

func (e *Engine) mutate(field Field, step hangul.Step) Result {
	var result Result
	switch step.Action.Kind {
	case hangul.ActionReplace:
		result = e.replace(field, step.Action.Char)
	case hangul.ActionEmitAndStart:
		result = e.emitAndStart(field, step.Action.Emit, step.Action.Char)
	case hangul.ActionDelete:
		result = Result{
			Handled: true,
			Edits:   []buffer.Edit{buffer.Delete(e.anchor)},
			Caret:   e.anchor,
		}
		e.Reset()
		return result
	default:
		return unhandled(field)
	}
	e.fragment = step.Fragment
	return result
}

func (e *Engine) replace(field Field, ch rune) Result {
	if e.anchorValid(field) {
		return Result{
			Handled: true,
			Edits:   []buffer.Edit{buffer.Replace(e.anchor, ch)},
			Caret:   e.anchor + 1,
		}
	}
	e.anchor, e.hasAnchor = field.Caret(), true
	return Result{
		Handled: true,
		Edits:   []buffer.Edit{buffer.Insert(e.anchor, ch)},
		Caret:   e.anchor + 1,
	}
}

func (e *Engine) emitAndStart(field Field, emit, ch rune) Result {
	edits := make([]buffer.Edit, 0, 2)
	if e.anchorValid(field) {
		edits = append(edits, buffer.Replace(e.anchor, emit))
	} else {
		e.anchor, e.hasAnchor = field.Caret(), true
		edits = append(edits, buffer.Insert(e.anchor, emit))
	}
	e.anchor++
	edits = append(edits, buffer.Insert(e.anchor, ch))
	return Result{Handled: true, Edits: edits, Caret: e.anchor + 1}
}

func (e *Engine) anchorValid(field Field) bool {
	return e.hasAnchor && e.anchor >= 0 && e.anchor < field.Len()
}

func (e *Engine) fail(field Field, op string, err error) Result {
	if e.strict {
		panic(err)
	}
	e.logger.Error("composition failed", "op", op, "fragment", e.fragment.String(), "error", err)
	e.Reset()
	return unhandled(field)
}

func unhandled(field Field) Result {
	return Result{Caret: field.Caret()}
}
