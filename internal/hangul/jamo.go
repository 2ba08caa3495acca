package hangul

import (
	"fmt"
	"strings"
)

// JamoRole is a set of syllable slots a resolved key may fill. A consonant on
// a 2-set layout is both an initial and a final candidate; the automaton
// picks one from the current fragment.
type JamoRole uint8

const (
	RoleInitial JamoRole = 1 << iota
	RoleMedial
	RoleFinal

	// RoleAuto asks NewJamo for every role the jamo can play.
	RoleAuto JamoRole = 0
)

func (r JamoRole) Has(role JamoRole) bool { return r&role != 0 }

func (r JamoRole) String() string {
	if r == RoleAuto {
		return "auto"
	}
	var parts []string
	if r.Has(RoleInitial) {
		parts = append(parts, "initial")
	}
	if r.Has(RoleMedial) {
		parts = append(parts, "medial")
	}
	if r.Has(RoleFinal) {
		parts = append(parts, "final")
	}
	return strings.Join(parts, "|")
}

// Jamo is the output of a key-role resolver: the candidate roles of one key
// and the canonical index for each of them. The zero value is an unmapped key.
type Jamo struct {
	char    rune
	roles   JamoRole
	initial JamoIndex
	medial  JamoIndex
	final   JamoIndex
}

// NewJamo resolves a compatibility jamo into its canonical indices. roles
// restricts the candidates; every requested role must exist for ch.
func NewJamo(ch rune, roles JamoRole) (Jamo, error) {
	j := Jamo{char: ch}
	initial, isInitial := InitialIndex(ch)
	medial, isMedial := MedialIndex(ch)
	final, isFinal := FinalIndex(ch)

	if roles == RoleAuto {
		if isInitial {
			roles |= RoleInitial
		}
		if isMedial {
			roles |= RoleMedial
		}
		if isFinal {
			roles |= RoleFinal
		}
		if roles == RoleAuto {
			return Jamo{}, fmt.Errorf("%q is not a hangul jamo", ch)
		}
	}
	if roles.Has(RoleInitial) {
		if !isInitial {
			return Jamo{}, fmt.Errorf("%q cannot be an initial", ch)
		}
		j.initial = initial
	}
	if roles.Has(RoleMedial) {
		if !isMedial {
			return Jamo{}, fmt.Errorf("%q cannot be a medial", ch)
		}
		j.medial = medial
	}
	if roles.Has(RoleFinal) {
		if !isFinal {
			return Jamo{}, fmt.Errorf("%q cannot be a final", ch)
		}
		j.final = final
	}
	j.roles = roles
	return j, nil
}

// MustJamo is NewJamo for static tables.
func MustJamo(ch rune, roles JamoRole) Jamo {
	j, err := NewJamo(ch, roles)
	if err != nil {
		panic(err)
	}
	return j
}

// NewJamoIndex builds a Jamo directly from an index. It does not range-check;
// the automaton rejects out-of-range indices with ErrInvariant.
func NewJamoIndex(role JamoRole, idx JamoIndex) Jamo {
	j := Jamo{roles: role}
	switch role {
	case RoleInitial:
		j.initial = idx
		j.char = InitialRune(idx)
	case RoleMedial:
		j.medial = idx
		j.char = MedialRune(idx)
	case RoleFinal:
		j.final = idx
		j.char = FinalRune(idx)
	default:
		return Jamo{}
	}
	return j
}

func (j Jamo) Mapped() bool { return j.roles != 0 }

func (j Jamo) Roles() JamoRole { return j.roles }

func (j Jamo) Rune() rune { return j.char }

func (j Jamo) Is(role JamoRole) bool { return j.roles.Has(role) }

// Index returns the canonical index for role, if the jamo is a candidate for it.
func (j Jamo) Index(role JamoRole) (JamoIndex, bool) {
	if !j.roles.Has(role) {
		return 0, false
	}
	switch role {
	case RoleInitial:
		return j.initial, true
	case RoleMedial:
		return j.medial, true
	case RoleFinal:
		return j.final, true
	}
	return 0, false
}

// asInitial is the consonant as a syllable-opening initial: its own initial
// index, or the initial form of a simple final.
func (j Jamo) asInitial() (JamoIndex, bool) {
	if idx, ok := j.Index(RoleInitial); ok {
		return idx, true
	}
	if idx, ok := j.Index(RoleFinal); ok {
		return FinalAsInitial(idx)
	}
	return 0, false
}

func (j Jamo) String() string {
	if !j.Mapped() {
		return "unmapped"
	}
	return fmt.Sprintf("%c(%s)", j.char, j.roles)
}

func (j Jamo) validate() error {
	if j.roles.Has(RoleInitial) && int(j.initial) >= InitialCount {
		return fmt.Errorf("%w: initial index %d out of range", ErrInvariant, j.initial)
	}
	if j.roles.Has(RoleMedial) && int(j.medial) >= MedialCount {
		return fmt.Errorf("%w: medial index %d out of range", ErrInvariant, j.medial)
	}
	if j.roles.Has(RoleFinal) && (j.final == 0 || int(j.final) >= FinalCount) {
		return fmt.Errorf("%w: final index %d out of range", ErrInvariant, j.final)
	}
	return nil
}
