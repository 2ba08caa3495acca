package layout

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"hangulpad/internal/hangul"
)

// CustomPair overrides one key of a layout. Files are YAML; JSON arrays are
// accepted as well since they are valid YAML.
type CustomPair struct {
	Key     string `yaml:"key"`
	Kind    string `yaml:"kind"`
	Normal  string `yaml:"normal"`
	Shifted string `yaml:"shifted"`
	Role    string `yaml:"role"`
}

func LoadCustomPairs(path string) ([]CustomPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open custom keypair file: %w", err)
	}
	return ParseCustomPairs(data)
}

func ParseCustomPairs(data []byte) ([]CustomPair, error) {
	var pairs []CustomPair
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse custom keypair file: %w", err)
	}
	return pairs, nil
}

// ApplyCustomPairs validates every pair before touching the layout, so a bad
// file leaves the layout unchanged.
func ApplyCustomPairs(l *Layout, pairs []CustomPair) error {
	type override struct {
		key     rune
		normal  *hangul.Jamo
		shifted *hangul.Jamo
	}
	overrides := make([]override, 0, len(pairs))

	for _, pair := range pairs {
		key, err := resolveKey(pair.Key)
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(pair.Kind)) {
		case "passthrough":
			overrides = append(overrides, override{key: key})
		case "", "jamo":
			normal, shifted, err := makeJamoPair(pair.Normal, pair.Shifted, pair.Role)
			if err != nil {
				return fmt.Errorf("key %q: %w", pair.Key, err)
			}
			if normal == nil && shifted == nil {
				return fmt.Errorf("key %q: jamo pair without a value", pair.Key)
			}
			overrides = append(overrides, override{key: key, normal: normal, shifted: shifted})
		default:
			return fmt.Errorf("unsupported custom keypair kind '%s'", pair.Kind)
		}
	}

	for _, o := range overrides {
		l.ApplyOverride(o.key, false, o.normal)
		if l.Kind() == KindTwoSet {
			l.ApplyOverride(o.key, true, o.shifted)
		}
	}
	return nil
}

func makeJamoPair(normal, shifted, role string) (*hangul.Jamo, *hangul.Jamo, error) {
	roles, err := parseRole(role)
	if err != nil {
		return nil, nil, err
	}
	makeSymbol := func(value string) (*hangul.Jamo, error) {
		if value == "" {
			return nil, nil
		}
		if utf8.RuneCountInString(value) != 1 {
			return nil, fmt.Errorf("jamo value must be a single rune, got %q", value)
		}
		r, _ := utf8.DecodeRuneInString(value)
		j, err := hangul.NewJamo(r, roles)
		if err != nil {
			return nil, err
		}
		return &j, nil
	}

	normalSymbol, err := makeSymbol(normal)
	if err != nil {
		return nil, nil, err
	}
	shiftedSymbol, err := makeSymbol(shifted)
	if err != nil {
		return nil, nil, err
	}
	return normalSymbol, shiftedSymbol, nil
}

func parseRole(role string) (hangul.JamoRole, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "", "auto":
		return hangul.RoleAuto, nil
	case "initial", "leading":
		return hangul.RoleInitial, nil
	case "medial", "vowel":
		return hangul.RoleMedial, nil
	case "final", "trailing":
		return hangul.RoleFinal, nil
	default:
		return 0, fmt.Errorf("unknown jamo role '%s'", role)
	}
}

var keyNames = map[string]rune{
	"space":      ' ',
	"minus":      '-',
	"equal":      '=',
	"leftbrace":  '[',
	"rightbrace": ']',
	"backslash":  '\\',
	"semicolon":  ';',
	"apostrophe": '\'',
	"grave":      '`',
	"comma":      ',',
	"dot":        '.',
	"slash":      '/',
}

// resolveKey accepts a single character or a key name, with or without the
// evdev-style KEY_ prefix.
func resolveKey(name string) (rune, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(trimmed) == 1 {
		r, _ := utf8.DecodeRuneInString(trimmed)
		return r, nil
	}

	normalized := strings.TrimPrefix(strings.ToLower(trimmed), "key_")
	if utf8.RuneCountInString(normalized) == 1 {
		r, _ := utf8.DecodeRuneInString(normalized)
		return r, nil
	}
	if r, ok := keyNames[normalized]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown key name '%s'", name)
}
