package hangul

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a fragment or jamo that no valid table lookup can
// produce. It always points at a defect in layout data or the automaton.
var ErrInvariant = errors.New("hangul: invariant violation")

// Fragment is the syllable under composition. The zero value is empty.
// Initial and medial are stored one-based so that zero means absent; the
// final uses its canonical index directly, where zero already means absent.
type Fragment struct {
	cho  uint8
	jung uint8
	jong uint8
}

func (f Fragment) Initial() (JamoIndex, bool) {
	if f.cho == 0 {
		return 0, false
	}
	return JamoIndex(f.cho - 1), true
}

func (f Fragment) Medial() (JamoIndex, bool) {
	if f.jung == 0 {
		return 0, false
	}
	return JamoIndex(f.jung - 1), true
}

func (f Fragment) Final() (JamoIndex, bool) {
	if f.jong == 0 {
		return 0, false
	}
	return JamoIndex(f.jong), true
}

func (f Fragment) HasInitial() bool { return f.cho != 0 }

func (f Fragment) HasMedial() bool { return f.jung != 0 }

func (f Fragment) HasFinal() bool { return f.jong != 0 }

func (f Fragment) Empty() bool { return f == Fragment{} }

func (f Fragment) WithInitial(idx JamoIndex) Fragment {
	f.cho = uint8(idx) + 1
	return f
}

func (f Fragment) WithMedial(idx JamoIndex) Fragment {
	f.jung = uint8(idx) + 1
	return f
}

// WithFinal sets the final; index 0 clears it.
func (f Fragment) WithFinal(idx JamoIndex) Fragment {
	f.jong = uint8(idx)
	return f
}

func (f Fragment) WithoutInitial() Fragment {
	f.cho = 0
	return f
}

func (f Fragment) WithoutMedial() Fragment {
	f.jung = 0
	return f
}

func (f Fragment) WithoutFinal() Fragment {
	f.jong = 0
	return f
}

// Compose returns the character displayed for the fragment: a precomposed
// syllable once initial and medial are both present, otherwise the
// compatibility jamo of the single filled slot. An empty fragment shows
// nothing.
func (f Fragment) Compose() (rune, bool) {
	initial, hasInitial := f.Initial()
	medial, hasMedial := f.Medial()
	switch {
	case hasInitial && hasMedial:
		final, _ := f.Final()
		return Syllable(initial, medial, final), true
	case hasInitial:
		return InitialRune(initial), true
	case hasMedial:
		return MedialRune(medial), true
	}
	return 0, false
}

// Validate reports index ranges and slot ordering violations.
func (f Fragment) Validate() error {
	if initial, ok := f.Initial(); ok && int(initial) >= InitialCount {
		return fmt.Errorf("%w: initial index %d out of range", ErrInvariant, initial)
	}
	if medial, ok := f.Medial(); ok && int(medial) >= MedialCount {
		return fmt.Errorf("%w: medial index %d out of range", ErrInvariant, medial)
	}
	if final, ok := f.Final(); ok {
		if int(final) >= FinalCount {
			return fmt.Errorf("%w: final index %d out of range", ErrInvariant, final)
		}
		if !f.HasInitial() || !f.HasMedial() {
			return fmt.Errorf("%w: final without initial and medial", ErrInvariant)
		}
	}
	return nil
}

func (f Fragment) String() string {
	slot := func(ch rune, ok bool) string {
		if !ok {
			return "-"
		}
		return string(ch)
	}
	initial, hasInitial := f.Initial()
	medial, hasMedial := f.Medial()
	final, hasFinal := f.Final()
	return fmt.Sprintf("[%s %s %s]",
		slot(InitialRune(initial), hasInitial),
		slot(MedialRune(medial), hasMedial),
		slot(FinalRune(final), hasFinal))
}
