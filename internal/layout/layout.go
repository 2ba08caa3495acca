package layout

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"hangulpad/internal/hangul"
)

// Kind selects the key-role resolver used by a layout.
type Kind int

const (
	// KindTwoSet binds physical keys, one jamo per shift state. Consonants
	// are both initial and final candidates.
	KindTwoSet Kind = iota
	// KindThreeSet binds raw characters to jamo with a fixed role each.
	KindThreeSet
)

func (k Kind) String() string {
	switch k {
	case KindTwoSet:
		return "2-set"
	case KindThreeSet:
		return "3-set"
	default:
		return "unknown"
	}
}

// Key is a raw key event. Char is the key's character as reported by the
// terminal or widget; Shift carries shift or caps lock for layouts that look
// at physical keys.
type Key struct {
	Char  rune
	Shift bool
}

type LayoutEntry struct {
	Normal  *hangul.Jamo
	Shifted *hangul.Jamo
}

type Layout struct {
	name    string
	kind    Kind
	mapping map[rune]LayoutEntry
	// doubleInitials is set for layouts without tense-initial keys.
	doubleInitials bool
}

func NewLayout(name string, kind Kind) *Layout {
	return &Layout{name: name, kind: kind, mapping: make(map[rune]LayoutEntry)}
}

func (l *Layout) Name() string { return l.name }

func (l *Layout) Kind() Kind { return l.kind }

// Automaton returns the composition rules that go with this layout.
func (l *Layout) Automaton() hangul.Automaton {
	if l == nil {
		return hangul.Automaton{}
	}
	return hangul.Automaton{DoubleInitials: l.doubleInitials}
}

// Resolve maps a raw key to its jamo. ok is false for keys that are not
// phonemic input on this layout; callers pass those through literally.
func (l *Layout) Resolve(key Key) (hangul.Jamo, bool) {
	if l == nil {
		return hangul.Jamo{}, false
	}
	var symbol *hangul.Jamo
	switch l.kind {
	case KindTwoSet:
		symbol = l.resolveTwoSet(key)
	case KindThreeSet:
		symbol = l.resolveThreeSet(key)
	}
	if symbol == nil || !symbol.Mapped() {
		return hangul.Jamo{}, false
	}
	return *symbol, true
}

func (l *Layout) resolveTwoSet(key Key) *hangul.Jamo {
	physical := unicode.ToLower(key.Char)
	shift := key.Shift || unicode.IsUpper(key.Char)
	entry, ok := l.mapping[physical]
	if !ok {
		return nil
	}
	if shift && entry.Shifted != nil {
		return entry.Shifted
	}
	return entry.Normal
}

func (l *Layout) resolveThreeSet(key Key) *hangul.Jamo {
	entry, ok := l.mapping[key.Char]
	if !ok {
		return nil
	}
	return entry.Normal
}

// ApplyOverride replaces one side of an entry; a nil symbol unmaps it.
func (l *Layout) ApplyOverride(key rune, shift bool, symbol *hangul.Jamo) {
	if l == nil {
		return
	}
	if l.kind == KindTwoSet {
		key = unicode.ToLower(key)
	}
	entry := l.mapping[key]
	if shift && l.kind == KindTwoSet {
		entry.Shifted = symbol
	} else {
		entry.Normal = symbol
	}
	if entry.Normal == nil && entry.Shifted == nil {
		delete(l.mapping, key)
		return
	}
	l.mapping[key] = entry
}

func makeJamo(value rune) *hangul.Jamo {
	j := hangul.MustJamo(value, hangul.RoleAuto)
	return &j
}

func makeJamoSymbol(value rune, role hangul.JamoRole) *hangul.Jamo {
	j := hangul.MustJamo(value, role)
	return &j
}

func addEntry(mapping map[rune]LayoutEntry, key rune, normal *hangul.Jamo, shifted *hangul.Jamo) {
	mapping[key] = LayoutEntry{Normal: normal, Shifted: shifted}
}

func buildDubeolsik() *Layout {
	layout := NewLayout("dubeolsik", KindTwoSet)
	mapping := layout.mapping
	addEntry(mapping, 'q', makeJamo('ㅂ'), makeJamo('ㅃ'))
	addEntry(mapping, 'w', makeJamo('ㅈ'), makeJamo('ㅉ'))
	addEntry(mapping, 'e', makeJamo('ㄷ'), makeJamo('ㄸ'))
	addEntry(mapping, 'r', makeJamo('ㄱ'), makeJamo('ㄲ'))
	addEntry(mapping, 't', makeJamo('ㅅ'), makeJamo('ㅆ'))
	addEntry(mapping, 'y', makeJamo('ㅛ'), nil)
	addEntry(mapping, 'u', makeJamo('ㅕ'), nil)
	addEntry(mapping, 'i', makeJamo('ㅑ'), nil)
	addEntry(mapping, 'o', makeJamo('ㅐ'), makeJamo('ㅒ'))
	addEntry(mapping, 'p', makeJamo('ㅔ'), makeJamo('ㅖ'))
	addEntry(mapping, 'a', makeJamo('ㅁ'), nil)
	addEntry(mapping, 's', makeJamo('ㄴ'), nil)
	addEntry(mapping, 'd', makeJamo('ㅇ'), nil)
	addEntry(mapping, 'f', makeJamo('ㄹ'), nil)
	addEntry(mapping, 'g', makeJamo('ㅎ'), nil)
	addEntry(mapping, 'h', makeJamo('ㅗ'), nil)
	addEntry(mapping, 'j', makeJamo('ㅓ'), nil)
	addEntry(mapping, 'k', makeJamo('ㅏ'), nil)
	addEntry(mapping, 'l', makeJamo('ㅣ'), nil)
	addEntry(mapping, 'z', makeJamo('ㅋ'), nil)
	addEntry(mapping, 'x', makeJamo('ㅌ'), nil)
	addEntry(mapping, 'c', makeJamo('ㅊ'), nil)
	addEntry(mapping, 'v', makeJamo('ㅍ'), nil)
	addEntry(mapping, 'b', makeJamo('ㅠ'), nil)
	addEntry(mapping, 'n', makeJamo('ㅜ'), nil)
	addEntry(mapping, 'm', makeJamo('ㅡ'), nil)
	return layout
}

// Sebeolsik 390: initials on the right hand, vowels in the middle, finals on
// the left hand and the shifted keys. The duplicate ㅗ (/) and ㅜ (9) keys
// exist for typing compound vowels.
func buildSebeolsik390() *Layout {
	layout := NewLayout("sebeolsik-390", KindThreeSet)
	layout.doubleInitials = true
	mapping := layout.mapping

	initials := map[rune]rune{
		'k': 'ㄱ', 'h': 'ㄴ', 'u': 'ㄷ', 'y': 'ㄹ', 'i': 'ㅁ', ';': 'ㅂ', 'n': 'ㅅ',
		'j': 'ㅇ', 'l': 'ㅈ', 'o': 'ㅊ', '0': 'ㅋ', '\'': 'ㅌ', 'p': 'ㅍ', 'm': 'ㅎ',
	}
	for key, value := range initials {
		addEntry(mapping, key, makeJamoSymbol(value, hangul.RoleInitial), nil)
	}

	medials := map[rune]rune{
		'f': 'ㅏ', 'r': 'ㅐ', '6': 'ㅑ', 'G': 'ㅒ', 't': 'ㅓ', 'c': 'ㅔ', 'e': 'ㅕ',
		'7': 'ㅖ', 'v': 'ㅗ', '/': 'ㅗ', '4': 'ㅛ', 'b': 'ㅜ', '9': 'ㅜ', '5': 'ㅠ',
		'g': 'ㅡ', '8': 'ㅢ', 'd': 'ㅣ',
	}
	for key, value := range medials {
		addEntry(mapping, key, makeJamoSymbol(value, hangul.RoleMedial), nil)
	}

	finals := map[rune]rune{
		'x': 'ㄱ', '!': 'ㄲ', 'V': 'ㄳ', 's': 'ㄴ', 'E': 'ㄵ', 'S': 'ㄶ', 'A': 'ㄷ',
		'w': 'ㄹ', '@': 'ㄺ', 'F': 'ㄻ', 'D': 'ㄼ', 'T': 'ㄽ', '%': 'ㄾ', '$': 'ㄿ',
		'R': 'ㅀ', 'z': 'ㅁ', '3': 'ㅂ', 'X': 'ㅄ', 'q': 'ㅅ', '2': 'ㅆ', 'a': 'ㅇ',
		'#': 'ㅈ', 'Z': 'ㅊ', 'C': 'ㅋ', 'W': 'ㅌ', 'Q': 'ㅍ', '1': 'ㅎ',
	}
	for key, value := range finals {
		addEntry(mapping, key, makeJamoSymbol(value, hangul.RoleFinal), nil)
	}

	return layout
}

var layoutAliases = map[string]string{
	"":              "dubeolsik",
	"dubeolsik":     "dubeolsik",
	"2-set":         "dubeolsik",
	"2set":          "dubeolsik",
	"2beolsik":      "dubeolsik",
	"두벌식":           "dubeolsik",
	"sebeolsik-390": "sebeolsik-390",
	"sebeolsik":     "sebeolsik-390",
	"3-set":         "sebeolsik-390",
	"3set":          "sebeolsik-390",
	"390":           "sebeolsik-390",
	"세벌식":           "sebeolsik-390",
}

func AvailableLayouts() []string {
	names := []string{"dubeolsik", "sebeolsik-390"}
	sort.Strings(names)
	return names
}

// Load builds a fresh copy of a built-in layout, so overrides applied by one
// caller never leak into another.
func Load(name string) (*Layout, error) {
	canonical, ok := layoutAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown layout: %s (available: %s)", name, strings.Join(AvailableLayouts(), ", "))
	}
	switch canonical {
	case "sebeolsik-390":
		return buildSebeolsik390(), nil
	default:
		return buildDubeolsik(), nil
	}
}
