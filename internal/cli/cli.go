package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp    bool
	ListLayouts bool
	Batch       bool
	Debug       bool
	Strict      bool
	LayoutName  string
	ConfigPath  string
	KeypairPath string
	Mode        string
}

func Parse(args []string) (Options, error) {
	var opts Options
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--list-layouts":
			opts.ListLayouts = true
		case arg == "--batch":
			opts.Batch = true
		case arg == "--debug" || arg == "-v":
			opts.Debug = true
		case arg == "--strict":
			opts.Strict = true
		case strings.HasPrefix(arg, "--layout"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LayoutName = value
			i = next
		case strings.HasPrefix(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case strings.HasPrefix(arg, "--keypairs"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.KeypairPath = value
			i = next
		case strings.HasPrefix(arg, "--mode"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Mode = value
			i = next
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `hangulpad - Hangul composition scratchpad
Usage: hangulpad [options]

Options:
  --layout NAME           Keyboard layout (default: dubeolsik)
  --config PATH           Path to hangulpad.ini (default: ./hangulpad.ini if present)
  --keypairs PATH         YAML file describing custom keypairs to merge into the layout
  --mode NAME             Starting input mode: hangul or latin
  --batch                 Translate stdin line by line instead of opening the pad
  --debug, -v             Log composition steps to stderr
  --strict                Abort on internal composition errors
  --list-layouts          List available layouts
  -h, --help              Show this help message

Pad keys:
  Ctrl-Space              Toggle between Hangul and Latin input
  Backspace               Undo the last jamo, or delete a character
  Enter                   Print the line and start a new one
  Esc, Ctrl-C             Quit`
}
