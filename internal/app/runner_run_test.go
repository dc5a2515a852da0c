package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func runeKeys(text string) []tcell.Event {
	var evs []tcell.Event
	for _, ch := range text {
		evs = append(evs, tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
	}
	return evs
}

// runEvents feeds events to r.Run through EventCh and waits for the loop to
// return. The channel is closed after the last event, which also ends the
// loop if nothing requested quit.
func runEvents(t *testing.T, r *Runner, groups ...[]tcell.Event) {
	t.Helper()
	var evs []tcell.Event
	for _, g := range groups {
		evs = append(evs, g...)
	}
	r.EventCh = make(chan tcell.Event, len(evs))
	for _, ev := range evs {
		r.EventCh <- ev
	}
	close(r.EventCh)

	done := make(chan error, 1)
	go func() { done <- r.Run() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runner returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for runner to quit")
	}
}

func events(evs ...tcell.Event) []tcell.Event { return evs }

func TestRun_TypingSaveQuit_Simulation(t *testing.T) {
	r, _ := newScreenRunner(t, "")
	path := filepath.Join(t.TempDir(), "out.txt")
	r.FilePath = path

	runEvents(t, r, runeKeys("ab"), events(ctrl('s'), ctrl('q')))

	if got := r.Buf.String(); got != "ab" {
		t.Fatalf("expected buffer 'ab', got %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "ab" {
		t.Fatalf("expected saved content 'ab', got %q", string(data))
	}
	if r.Dirty {
		t.Fatalf("expected Dirty=false after save")
	}
}

func TestRun_OpenFilePrompt_Simulation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	content := "hello\nworld\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	r, _ := newScreenRunner(t, "")

	runEvents(t, r,
		events(ctrl('o')),
		runeKeys(path),
		events(key(tcell.KeyEnter), ctrl('q')),
	)

	if r.FilePath != path {
		t.Fatalf("expected FilePath=%q after open, got %q", path, r.FilePath)
	}
	if got := r.Buf.String(); got != content {
		t.Fatalf("expected buffer to equal file content, got %q", got)
	}
}

func TestRun_OpenMissingFileKeepsEditorUsable(t *testing.T) {
	r, s := newScreenRunner(t, "draft")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	runEvents(t, r,
		events(ctrl('o')),
		runeKeys(missing),
		events(key(tcell.KeyEnter), key(tcell.KeyEsc)),
		runeKeys("!"),
	)

	if got := r.Buf.String(); got != "!draft" {
		t.Fatalf("expected the editor to keep editing the old buffer, got %q", got)
	}
	if r.FilePath != "" {
		t.Fatalf("expected no file bound after a failed open, got %q", r.FilePath)
	}
	if len(r.MiniBuf) != 0 {
		t.Fatalf("expected prompt closed, got %q", r.MiniBuf)
	}
	if got := rowText(s, textTop); got[:6] != "!draft" {
		t.Fatalf("expected text area redrawn, got %q", got)
	}
}

func TestRun_SaveAsPromptWhenUntitled(t *testing.T) {
	r, _ := newScreenRunner(t, "")
	path := filepath.Join(t.TempDir(), "new.txt")

	runEvents(t, r,
		runeKeys("hi"),
		events(ctrl('s')),
		runeKeys(path),
		events(key(tcell.KeyEnter), ctrl('q')),
	)

	if r.FilePath != path {
		t.Fatalf("expected FilePath %q, got %q", path, r.FilePath)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hi" {
		t.Fatalf("expected file to contain 'hi', got %q (%v)", string(data), err)
	}
}

func TestRun_SaveErrorShowsDialog(t *testing.T) {
	r, _ := newScreenRunner(t, "")
	r.FilePath = filepath.Join(t.TempDir(), "no", "dir", "f.txt")

	runEvents(t, r,
		runeKeys("a"),
		events(ctrl('s'), key(tcell.KeyEnter)),
		runeKeys("b"),
		events(ctrl('q'), tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone)),
	)

	if got := r.Buf.String(); got != "ab" {
		t.Fatalf("expected editing to continue after the dialog, got %q", got)
	}
	if !r.Dirty {
		t.Fatalf("expected Dirty to stay set after a failed save")
	}
}

func TestRun_QuitConfirmation(t *testing.T) {
	r, _ := newScreenRunner(t, "")

	runEvents(t, r,
		runeKeys("a"),
		events(ctrl('q'), tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)),
		runeKeys("b"),
		events(ctrl('q'), tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone)),
		runeKeys("c"),
	)

	if got := r.Buf.String(); got != "ab" {
		t.Fatalf("expected quit after the second confirmation, got buffer %q", got)
	}
}

func TestRun_FontDialog(t *testing.T) {
	r, s := newScreenRunner(t, "")

	runEvents(t, r,
		events(ctrl('f'), key(tcell.KeyTab)),
		runeKeys("24"),
		events(key(tcell.KeyEnter), ctrl('q')),
	)

	if r.Font.Size != 24 || r.Font.Family != "Go Mono" {
		t.Fatalf("expected Go Mono 24, got %v", r.Font)
	}
	if got := cellAt(s, 20, rulerTop+1); got != '|' {
		t.Fatalf("expected ruler tick for column 10 at cell 20 after the font change, got %q", got)
	}
}

func TestRun_FontDialogCancel(t *testing.T) {
	r, _ := newScreenRunner(t, "")
	before := r.Font

	runEvents(t, r,
		events(ctrl('f'), key(tcell.KeyDown), key(tcell.KeyTab), key(tcell.KeyUp), key(tcell.KeyEsc), ctrl('q')),
	)

	if r.Font != before {
		t.Fatalf("expected font unchanged after Esc, got %v", r.Font)
	}
}

func TestRun_FontDialogRejectsBadSize(t *testing.T) {
	r, _ := newScreenRunner(t, "")

	runEvents(t, r,
		events(ctrl('f'), key(tcell.KeyTab)),
		runeKeys("99"),
		events(key(tcell.KeyEnter), key(tcell.KeyEsc)),
	)

	if r.Font.Size != 12 {
		t.Fatalf("expected size 99 to be rejected, got %v", r.Font)
	}
}

func TestRun_MenuBar(t *testing.T) {
	r, _ := newScreenRunner(t, "one\ntwo")

	runEvents(t, r,
		events(key(tcell.KeyF10)),
		runeKeys("e"),
		runeKeys("a"),
	)

	if got := r.selectedText(); got != "one\ntwo" {
		t.Fatalf("expected Edit > Select All to select everything, got %q", got)
	}
	if r.openMenu != 0 {
		t.Fatalf("expected menu closed after running an entry, got %d", r.openMenu)
	}
}

func TestRun_AltMenuExit(t *testing.T) {
	r, _ := newScreenRunner(t, "")

	runEvents(t, r,
		events(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt)),
		runeKeys("x"),
		runeKeys("typed after exit"),
	)

	if r.Buf.Len() != 0 {
		t.Fatalf("expected File > Exit to quit before more typing, got %q", r.Buf.String())
	}
}

func TestRun_MenuBarArrowsAndEnter(t *testing.T) {
	r, _ := newScreenRunner(t, "")

	// Help, left to Settings, down to Next Theme, run it
	runEvents(t, r,
		events(
			tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModAlt),
			key(tcell.KeyLeft),
			key(tcell.KeyDown),
			key(tcell.KeyEnter),
		),
	)

	if r.ThemeName != "light" {
		t.Fatalf("expected Settings > Next Theme to switch to light, got %q", r.ThemeName)
	}
}

func TestRun_CommandPalette(t *testing.T) {
	r, _ := newScreenRunner(t, "a\nb\nc")

	runEvents(t, r,
		events(ctrl('t')),
		runeKeys("goto"),
		events(key(tcell.KeyEnter)),
		runeKeys("3"),
		events(key(tcell.KeyEnter)),
	)

	if r.Cursor != 4 {
		t.Fatalf("expected cursor at the start of line 3, got %d", r.Cursor)
	}
}

func TestRun_HelpDismissedByAnyKey(t *testing.T) {
	r, _ := newScreenRunner(t, "")

	runEvents(t, r,
		events(key(tcell.KeyF1)),
		runeKeys("x"),
		runeKeys("y"),
	)

	if r.ShowHelp {
		t.Fatalf("expected help dismissed")
	}
	if got := r.Buf.String(); got != "y" {
		t.Fatalf("expected the dismissing key to be swallowed, got %q", got)
	}
}

func TestRun_AboutDialog(t *testing.T) {
	r, _ := newScreenRunner(t, "")

	runEvents(t, r,
		events(ctrl('a'), key(tcell.KeyEnter)),
		runeKeys("z"),
	)

	if got := r.Buf.String(); got != "z" {
		t.Fatalf("expected the about dialog to consume one key, got %q", got)
	}
}
