package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"example.com/simpleeditor/pkg/typeface"
	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values. The editor reads it once at
// startup and never writes it back.
type Config struct {
	Keymap map[string]Keybinding
	Font   typeface.Font
	Theme  string
}

// Default returns a Config with default key mappings, font and theme.
func Default() *Config {
	return &Config{Keymap: DefaultKeymap(), Font: typeface.Default(), Theme: "default"}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":       mustParse("Ctrl+Q"),
		"save":       mustParse("Ctrl+S"),
		"open":       mustParse("Ctrl+O"),
		"cut":        mustParse("Ctrl+X"),
		"copy":       mustParse("Ctrl+C"),
		"paste":      mustParse("Ctrl+V"),
		"undo":       mustParse("Ctrl+Z"),
		"redo":       mustParse("Ctrl+Y"),
		"font":       mustParse("Ctrl+F"),
		"about":      mustParse("Ctrl+A"),
		"menu":       mustParse("Ctrl+T"),
		"goto":       mustParse("Ctrl+G"),
		"select_all": mustParse("Ctrl+L"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned. Settings missing from the file keep their
// defaults.
//
//	theme: dark
//	font:
//	  family: Go Mono
//	  size: 14
//	  weight: bold
//	keymap:
//	  quit: Ctrl+X
func Load(path string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	raw := fileConfig{Font: fileFont{
		Family: cfg.Font.Family,
		Size:   cfg.Font.Size,
		Weight: cfg.Font.Weight.String(),
	}}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := raw.apply(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// fileConfig is the on-disk layout of the config file.
type fileConfig struct {
	Theme  string            `yaml:"theme"`
	Font   fileFont          `yaml:"font"`
	Keymap map[string]string `yaml:"keymap"`
}

type fileFont struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
	Weight string `yaml:"weight"`
}

func (raw fileConfig) apply(cfg *Config) error {
	if raw.Theme != "" {
		if _, ok := BuiltinThemes[raw.Theme]; !ok {
			return fmt.Errorf("unknown theme %q", raw.Theme)
		}
		cfg.Theme = raw.Theme
	}
	w, err := typeface.ParseWeight(raw.Font.Weight)
	if err != nil {
		return err
	}
	font := typeface.Font{Family: raw.Font.Family, Size: raw.Font.Size, Weight: w}
	if err := font.Validate(); err != nil {
		return err
	}
	cfg.Font = font
	defaults := DefaultKeymap()
	for name, spec := range raw.Keymap {
		if _, ok := defaults[name]; !ok {
			return fmt.Errorf("keymap: unknown command %q", name)
		}
		kb, err := ParseKeybinding(spec)
		if err != nil {
			return fmt.Errorf("keymap %s: %w", name, err)
		}
		cfg.Keymap[name] = kb
	}
	return nil
}

// DefaultPath returns ~/.simpleeditor/config.yaml, or "" when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simpleeditor", "config.yaml")
}

// LoadDefault attempts to read ~/.simpleeditor/config.yaml.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Only Ctrl+<letter> is supported, minus the letters that
// terminals cannot tell apart from editing keys.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	if editingKeys[r[0]] {
		return Keybinding{}, errors.New("keybinding collides with an editing key: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

// Terminals send Ctrl+H, Ctrl+I and Ctrl+M as Backspace, Tab and Enter.
var editingKeys = map[rune]bool{'h': true, 'i': true, 'm': true}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

// String renders the binding the way it is written in the config file.
func (k Keybinding) String() string {
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl {
		return "Ctrl+" + strings.ToUpper(string(k.Rune))
	}
	return ""
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == 0 && k.Rune == 0 {
		return false
	}
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		// Terminals report Ctrl+<letter> as the control key code.
		if ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a') {
			return true
		}
	}
	return false
}
