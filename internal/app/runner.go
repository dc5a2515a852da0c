package app

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"example.com/simpleeditor/pkg/buffer"
	"example.com/simpleeditor/pkg/clipboard"
	"example.com/simpleeditor/pkg/config"
	"example.com/simpleeditor/pkg/history"
	"example.com/simpleeditor/pkg/logs"
	"example.com/simpleeditor/pkg/typeface"
	"github.com/gdamore/tcell/v2"
)

// untitled is shown for a buffer that has never been saved.
const untitled = "Untitled"

// Runner owns the terminal lifecycle, the editor window state and the event
// loop. The zero value is usable; missing collaborators get defaults.
type Runner struct {
	Screen     tcell.Screen
	FilePath   string
	Buf        *buffer.GapBuffer
	LineEnding buffer.LineEnding
	Cursor     int // cursor position in runes
	Selecting  bool
	Anchor     int // selection anchor in runes, valid while Selecting
	Dirty      bool
	ShowHelp   bool
	TopLine    int // first visible line
	LeftCol    int // first visible display column
	History    *history.History
	Clipboard  clipboard.Clipboard
	Logger     *logs.Logger
	MiniBuf    []string
	Keymap     map[string]config.Keybinding
	Theme      config.Theme
	ThemeName  string
	Font       typeface.Font
	BaseFont   typeface.Font // font whose column is one terminal cell
	Metrics    *typeface.Metrics

	// EventCh, when set, replaces Screen.PollEvent as the event source.
	EventCh chan tcell.Event
	// RenderCh, when set, receives render snapshots instead of the screen.
	RenderCh chan renderState

	openMenu int  // 1-based menu bar entry being browsed, 0 when closed
	miniErr  bool // the last MiniBuf line is an error message
	flash    bool // MiniBuf holds a message cleared by the next key
	goalCol  int  // display column kept across vertical moves
	hasGoal  bool

	// disk holds the bytes last read or written, diskText the buffer text
	// they decode to. Saving unchanged text writes disk back as is.
	disk     []byte
	diskText string
}

// clip returns the clipboard, creating the system-backed one on first use.
func (r *Runner) clip() clipboard.Clipboard {
	if r.Clipboard == nil {
		r.Clipboard = r.newClipboard(clipboard.System())
	}
	return r.Clipboard
}

// New creates a Runner configured from cfg. A nil cfg uses defaults.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	theme, ok := config.BuiltinThemes[cfg.Theme]
	name := cfg.Theme
	if !ok {
		theme, name = config.DefaultTheme(), "default"
	}
	r := &Runner{
		Buf:       buffer.NewGapBuffer(0),
		History:   history.New(),
		Keymap:    cfg.Keymap,
		Theme:     theme,
		ThemeName: name,
		Font:      cfg.Font,
		BaseFont:  typeface.Default(),
		Metrics:   typeface.NewMetrics(),
	}
	r.Clipboard = r.newClipboard(clipboard.System())
	return r
}

func (r *Runner) newClipboard(primary clipboard.Clipboard) clipboard.Clipboard {
	c := clipboard.NewWithFallback(primary)
	c.OnError = func(op string, err error) {
		r.Logger.Error("clipboard.error", err, map[string]any{"op": op})
	}
	return c
}

func (r *Runner) setMiniBuffer(lines []string) {
	r.MiniBuf = lines
	r.miniErr = false
	r.flash = false
}

func (r *Runner) clearMiniBuffer() {
	r.MiniBuf = nil
	r.miniErr = false
	r.flash = false
}

// flashMessage shows msg in the mini-buffer until the next key press.
func (r *Runner) flashMessage(msg string) {
	r.setMiniBuffer([]string{msg})
	r.flash = true
}

// DisplayName is the file's base name, or "Untitled".
func (r *Runner) DisplayName() string {
	if r.FilePath == "" {
		return untitled
	}
	return filepath.Base(r.FilePath)
}

// LoadFile replaces the buffer with the contents of path. On error the
// current buffer is left untouched.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	data, err := os.ReadFile(path)
	if err != nil {
		r.Logger.Error("open.error", err, map[string]any{"file": path})
		return fmt.Errorf("open %s: %w", path, err)
	}
	r.LineEnding = buffer.DetectLineEnding(data)
	r.FilePath = path
	r.Buf = buffer.NewGapBufferFromString(buffer.Normalize(data, r.LineEnding))
	r.disk, r.diskText = data, r.Buf.String()
	r.Cursor = 0
	r.Selecting = false
	r.TopLine, r.LeftCol = 0, 0
	r.hasGoal = false
	r.Dirty = false
	if r.History == nil {
		r.History = history.New()
	}
	r.History.Reset()
	r.Logger.Event("open.success", map[string]any{"file": path, "bytes": len(data), "runes": r.Buf.Len(), "line_ending": r.LineEnding.String(), "utf8": utf8.Valid(data)})
	return nil
}

// NewFile binds an empty buffer to path without reading it, for launching
// the editor on a file that does not exist yet.
func (r *Runner) NewFile(path string) {
	r.FilePath = path
	r.Buf = buffer.NewGapBuffer(0)
	r.LineEnding = buffer.LF
	r.disk, r.diskText = nil, ""
	r.Cursor = 0
	r.Selecting = false
	r.Dirty = false
	if r.History != nil {
		r.History.Reset()
	}
}

// Save writes the buffer contents to the current FilePath and clears Dirty.
func (r *Runner) Save() error {
	if r.FilePath == "" {
		return os.ErrInvalid
	}
	if r.Buf == nil {
		r.Buf = buffer.NewGapBuffer(0)
	}
	text := r.Buf.String()
	data := r.disk
	if data == nil || text != r.diskText {
		data = buffer.Restore(text, r.LineEnding)
	}
	if err := os.WriteFile(r.FilePath, data, 0644); err != nil {
		r.Logger.Error("save.error", err, map[string]any{"file": r.FilePath})
		return fmt.Errorf("save %s: %w", r.FilePath, err)
	}
	r.disk, r.diskText = data, text
	r.Dirty = false
	if r.History != nil {
		r.History.MarkSaved()
	}
	r.Logger.Event("save.success", map[string]any{"file": r.FilePath, "bytes": len(data)})
	return nil
}

// SaveAs writes the current buffer to path and, on success, makes it the
// current file.
func (r *Runner) SaveAs(path string) error {
	if path == "" {
		return os.ErrInvalid
	}
	prev := r.FilePath
	r.FilePath = path
	if err := r.Save(); err != nil {
		r.FilePath = prev
		return err
	}
	return nil
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	r.Logger.Close()
}

// waitEvent returns the next event, or nil when the source is closed.
func (r *Runner) waitEvent() tcell.Event {
	if r.EventCh != nil {
		ev, ok := <-r.EventCh
		if !ok {
			return nil
		}
		return ev
	}
	if r.Screen == nil {
		return nil
	}
	return r.Screen.PollEvent()
}

// Run starts the event loop. It will initialize the screen if needed and
// return when the user requests quit.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	r.Logger.Event("run.start", map[string]any{"file": r.FilePath})
	defer r.Logger.Event("run.end", map[string]any{"file": r.FilePath})

	r.draw()
	for {
		ev := r.waitEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			r.Logger.Event("key", map[string]any{
				"key":       int(ev.Key()),
				"rune":      string(ev.Rune()),
				"modifiers": int(ev.Modifiers()),
			})
			if r.ShowHelp {
				r.ShowHelp = false
				r.draw()
				continue
			}
			if r.handleKeyEvent(ev) {
				r.Logger.Event("action", map[string]any{"name": "quit"})
				return nil
			}
		case *tcell.EventResize:
			r.Screen.Sync()
			r.draw()
		}
	}
}
