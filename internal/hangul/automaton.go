package hangul

import "fmt"

type ActionKind int

const (
	// ActionUnhandled leaves both the fragment and the text untouched.
	ActionUnhandled ActionKind = iota
	// ActionReplace redraws the composing character in place.
	ActionReplace
	// ActionEmitAndStart finalizes the previous syllable as Emit and opens a
	// new fragment displayed as Char right after it.
	ActionEmitAndStart
	// ActionDelete removes the composing character; the fragment is empty.
	ActionDelete
)

func (k ActionKind) String() string {
	switch k {
	case ActionUnhandled:
		return "unhandled"
	case ActionReplace:
		return "replace"
	case ActionEmitAndStart:
		return "emit-and-start"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type Action struct {
	Kind ActionKind
	Emit rune
	Char rune
}

// Step is the outcome of feeding one jamo or one backspace to the automaton.
type Step struct {
	Fragment Fragment
	Action   Action
}

// Automaton holds the composition rules. It keeps no state of its own; the
// live fragment belongs to the caller.
type Automaton struct {
	// DoubleInitials merges a repeated initial (ㄱ+ㄱ→ㄲ) while the fragment
	// holds nothing else, and lets backspace undo the merge.
	DoubleInitials bool
}

// Apply feeds one resolved jamo to the fragment f.
func (a Automaton) Apply(f Fragment, j Jamo) (Step, error) {
	if err := f.Validate(); err != nil {
		return unhandled(f), err
	}
	if !j.Mapped() {
		return unhandled(f), nil
	}
	if err := j.validate(); err != nil {
		return unhandled(f), err
	}
	if medial, ok := j.Index(RoleMedial); ok {
		return a.applyMedial(f, medial)
	}
	return a.applyConsonant(f, j)
}

func (a Automaton) applyMedial(f Fragment, medial JamoIndex) (Step, error) {
	current, hasMedial := f.Medial()
	if !hasMedial {
		return replace(f.WithMedial(medial)), nil
	}

	final, hasFinal := f.Final()
	if !hasFinal {
		if merged, ok := MergeMedial(current, medial); ok {
			return replace(f.WithMedial(merged)), nil
		}
		return emitAndStart(f, Fragment{}.WithMedial(medial)), nil
	}

	prev := f.WithoutFinal()
	initial, ok := FinalAsInitial(final)
	if remainder, carried, split := SplitFinal(final); split {
		prev = f.WithFinal(remainder)
		initial, ok = carried, true
	}
	if !ok {
		return unhandled(f), fmt.Errorf("%w: final %c has no initial form", ErrInvariant, FinalRune(final))
	}
	return emitAndStart(prev, Fragment{}.WithInitial(initial).WithMedial(medial)), nil
}

func (a Automaton) applyConsonant(f Fragment, j Jamo) (Step, error) {
	initial, hasInitial := f.Initial()
	hasMedial := f.HasMedial()

	switch {
	case f.Empty():
		idx, ok := j.asInitial()
		if !ok {
			return unhandled(f), nil
		}
		return replace(f.WithInitial(idx)), nil

	case hasInitial && !hasMedial:
		if a.DoubleInitials {
			if incoming, ok := j.Index(RoleInitial); ok {
				if merged, ok := MergeInitial(initial, incoming); ok {
					return replace(f.WithInitial(merged)), nil
				}
			}
		}

	case hasInitial && hasMedial && !f.HasFinal():
		if final, ok := j.Index(RoleFinal); ok {
			return replace(f.WithFinal(final)), nil
		}
	}

	// Anything else closes the current syllable. A full fragment does not
	// try to build a cluster from a typed consonant.
	idx, ok := j.asInitial()
	if !ok {
		return unhandled(f), nil
	}
	return emitAndStart(f, Fragment{}.WithInitial(idx)), nil
}

// Backspace peels the most recently filled slot: final, then medial, then
// initial. Compound jamo are reduced one component at a time.
func (a Automaton) Backspace(f Fragment) (Step, error) {
	if err := f.Validate(); err != nil {
		return unhandled(f), err
	}

	if final, ok := f.Final(); ok {
		if remainder, _, split := SplitFinal(final); split {
			return replace(f.WithFinal(remainder)), nil
		}
		return replace(f.WithoutFinal()), nil
	}

	if medial, ok := f.Medial(); ok {
		if base, compound := ReduceMedial(medial); compound {
			return replace(f.WithMedial(base)), nil
		}
		return replaceOrDelete(f.WithoutMedial()), nil
	}

	if initial, ok := f.Initial(); ok {
		if a.DoubleInitials {
			if base, tense := ReduceInitial(initial); tense {
				return replace(f.WithInitial(base)), nil
			}
		}
		return replaceOrDelete(f.WithoutInitial()), nil
	}

	return unhandled(f), nil
}

func unhandled(f Fragment) Step {
	return Step{Fragment: f, Action: Action{Kind: ActionUnhandled}}
}

func replace(f Fragment) Step {
	ch, _ := f.Compose()
	return Step{Fragment: f, Action: Action{Kind: ActionReplace, Char: ch}}
}

func replaceOrDelete(f Fragment) Step {
	if f.Empty() {
		return Step{Fragment: f, Action: Action{Kind: ActionDelete}}
	}
	return replace(f)
}

func emitAndStart(prev, next Fragment) Step {
	emit, _ := prev.Compose()
	ch, _ := next.Compose()
	return Step{Fragment: next, Action: Action{Kind: ActionEmitAndStart, Emit: emit, Char: ch}}
}
