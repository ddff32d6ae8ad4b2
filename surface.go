package typewriter

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Surface is the text target a Typewriter mutates but does not own.
// One unit of text is one rune.
type Surface interface {
	// Append adds one unit of text at the end.
	Append(unit string)

	Text() string
	SetText(text string)

	// Len returns the current length in units.
	Len() int
}

// BufferSurface keeps the text in memory and notifies observers on change.
type BufferSurface struct {
	mu        sync.Mutex
	text      string
	observers []func(text string)
}

var _ Surface = &BufferSurface{}

func NewBufferSurface(initial string) *BufferSurface {
	return &BufferSurface{text: initial}
}

// OnChange registers fn to be called with the new text after every change.
func (bs *BufferSurface) OnChange(fn func(text string)) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.observers = append(bs.observers, fn)
}

func (bs *BufferSurface) Append(unit string) {
	bs.mu.Lock()
	bs.text += unit
	bs.notifyLocked()
}

func (bs *BufferSurface) Text() string {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return bs.text
}

func (bs *BufferSurface) SetText(text string) {
	bs.mu.Lock()
	bs.text = text
	bs.notifyLocked()
}

func (bs *BufferSurface) Len() int {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return utf8.RuneCountInString(bs.text)
}

// notifyLocked releases the lock before running observers.
func (bs *BufferSurface) notifyLocked() {
	text := bs.text
	observers := append([]func(string){}, bs.observers...)
	bs.mu.Unlock()

	for _, observer := range observers {
		observer(text)
	}
}

// WriterSurface renders onto a terminal-like io.Writer. Truncation is
// drawn with backspaces, so it only behaves on a single line.
type WriterSurface struct {
	mu   sync.Mutex
	w    io.Writer
	text string
	err  error
}

var _ Surface = &WriterSurface{}

func NewWriterSurface(w io.Writer) *WriterSurface {
	return &WriterSurface{w: w}
}

func (ws *WriterSurface) Append(unit string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.text += unit
	ws.write(unit)
}

func (ws *WriterSurface) Text() string {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.text
}

func (ws *WriterSurface) SetText(text string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if strings.HasPrefix(ws.text, text) {
		removed := utf8.RuneCountInString(ws.text) - utf8.RuneCountInString(text)
		ws.write(strings.Repeat("\b \b", removed))
	} else {
		ws.write("\r\x1b[2K" + text)
	}
	ws.text = text
}

func (ws *WriterSurface) Len() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return utf8.RuneCountInString(ws.text)
}

// Err returns the first write error, if any.
func (ws *WriterSurface) Err() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.err
}

func (ws *WriterSurface) write(s string) {
	if ws.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(ws.w, s); err != nil {
		ws.err = fmt.Errorf("writing to surface: %w", err)
	}
}

// truncateLast removes the last unit of text, reporting whether one was
// removed.
func truncateLast(surface Surface) bool {
	text := surface.Text()
	if text == "" {
		return false
	}

	_, size := utf8.DecodeLastRuneInString(text)
	surface.SetText(text[:len(text)-size])
	return true
}
