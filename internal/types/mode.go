package types

import (
	"fmt"
	"strings"
)

type InputMode int

const (
	ModeHangul InputMode = iota
	ModeLatin
)

func (m InputMode) String() string {
	switch m {
	case ModeHangul:
		return "hangul"
	case ModeLatin:
		return "latin"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m InputMode) Toggle() InputMode {
	if m == ModeHangul {
		return ModeLatin
	}
	return ModeHangul
}

func ParseInputMode(value string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "hangul", "korean":
		return ModeHangul, nil
	case "latin", "english", "default":
		return ModeLatin, nil
	default:
		return ModeHangul, fmt.Errorf("unknown input mode %q", value)
	}
}
