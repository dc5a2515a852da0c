package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"example.com/simpleeditor/pkg/typeface"
	"github.com/gdamore/tcell/v2"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)) {
		t.Fatalf("expected match for Ctrl+X rune event")
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)) {
		t.Fatalf("expected match for KeyCtrlX")
	}
	if kb.String() != "Ctrl+X" {
		t.Fatalf("unexpected String %q", kb.String())
	}
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, s := range []string{"Ctrl+", "Alt+X", "Ctrl+1", "X", "Ctrl+H", "Ctrl+i", "Ctrl+M"} {
		if _, err := ParseKeybinding(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestKeybinding_ZeroNeverMatches(t *testing.T) {
	var kb Keybinding
	if kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'a', 0)) {
		t.Fatalf("zero binding must not match")
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Font != typeface.Default() || cfg.Theme != "default" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigRemap(t *testing.T) {
	path := writeConfig(t, "keymap:\n  quit: Ctrl+X\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !cfg.Keymap["quit"].Matches(ev) {
		t.Fatalf("expected remapped quit to Ctrl+X")
	}
	if !cfg.Keymap["save"].Matches(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModCtrl)) {
		t.Fatalf("expected default save binding to survive")
	}
}

func TestLoadFontAndTheme(t *testing.T) {
	path := writeConfig(t, "# editor\ntheme: dark\nfont:\n  family: Go\n  size: 16\n  weight: bold\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := typeface.Font{Family: "Go", Size: 16, Weight: typeface.Bold}
	if cfg.Font != want {
		t.Fatalf("expected %v, got %v", want, cfg.Font)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("expected dark theme, got %q", cfg.Theme)
	}
}

func TestLoadPartialFontKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "font:\n  size: 20\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := typeface.Default()
	want.Size = 20
	if cfg.Font != want {
		t.Fatalf("expected %v, got %v", want, cfg.Font)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "default" || len(cfg.Keymap) != len(DefaultKeymap()) {
		t.Fatalf("expected defaults from an empty file, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown theme":  "theme: neon\n",
		"unknown key":    "colour: red\n",
		"bad size":       "font:\n  size: big\n",
		"bad family":     "font:\n  family: Comic Sans\n",
		"bad binding":    "keymap:\n  quit: Alt+Q\n",
		"tab binding":    "keymap:\n  save: Ctrl+I\n",
		"unknown action": "keymap:\n  qiut: Ctrl+E\n",
		"missing colon":  "keymap\n",
		"orphan entry":   "  size: 12\n",
		"inline section": "font: Go\n",
	}
	for name, data := range cases {
		_, err := Load(writeConfig(t, data))
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !strings.Contains(err.Error(), "config.yaml") {
			t.Errorf("%s: expected path in error, got %v", name, err)
		}
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) || names[0] != "dark" {
		t.Fatalf("unexpected theme names %v", names)
	}
}
