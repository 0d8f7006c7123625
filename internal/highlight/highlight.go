// Package highlight colours significant build-tool output lines as they stream past.
package highlight

import (
	"bytes"
	"io"
	"regexp"

	"github.com/fatih/color"
)

// Level is the significance of an output line.
type Level int

// Line levels, from insignificant to most severe.
const (
	LevelNone Level = iota
	LevelPass
	LevelWarn
	LevelError
)

type rule struct {
	pattern *regexp.Regexp
	level   Level
}

// rules are evaluated in order; the first match decides the level.
var rules = []rule{
	{regexp.MustCompile(`(?i)result:\s*fail`), LevelError},
	{regexp.MustCompile(`(?i)can't locate .* in @inc`), LevelError},
	{regexp.MustCompile(`(?i)no such file or directory`), LevelError},
	{regexp.MustCompile(`(?i)no rule to make target`), LevelError},
	{regexp.MustCompile(`(?i)permission denied`), LevelError},
	{regexp.MustCompile(`(?i)command not found`), LevelError},
	{regexp.MustCompile(`(?i)\berror\b`), LevelError},
	{regexp.MustCompile(`(?i)failed`), LevelError},
	{regexp.MustCompile(`(?i)prerequisite .* not found`), LevelWarn},
	{regexp.MustCompile(`(?i)result:\s*pass`), LevelPass},
	{regexp.MustCompile(`(?i)all tests successful`), LevelPass},
}

// Classify returns the level of a single line (without its terminator).
func Classify(line string) Level {
	for _, r := range rules {
		if r.pattern.MatchString(line) {
			return r.level
		}
	}
	return LevelNone
}

// Writer passes every byte written to it through to the underlying writer,
// wrapping significant lines in colour escape sequences. Lines are emitted as
// soon as their newline arrives; call Flush to emit a trailing partial line.
// A Writer is not safe for concurrent use.
type Writer struct {
	out     io.Writer
	enabled bool
	colors  map[Level]*color.Color
	pending []byte
	counts  map[Level]int
}

// NewWriter returns a Writer over out. When colored is false lines are
// classified and counted but written unchanged.
func NewWriter(out io.Writer, colored bool) *Writer {
	colors := map[Level]*color.Color{
		LevelPass:  color.New(color.FgGreen, color.Bold),
		LevelWarn:  color.New(color.FgYellow, color.Bold),
		LevelError: color.New(color.FgRed, color.Bold),
	}
	for _, c := range colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Writer{
		out:     out,
		enabled: colored,
		colors:  colors,
		counts:  make(map[Level]int),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for {
		idx := bytes.IndexByte(w.pending, '\n')
		if idx < 0 {
			break
		}
		line := w.pending[:idx]
		if err := w.emit(line, "\n"); err != nil {
			return len(p), err
		}
		w.pending = w.pending[idx+1:]
	}
	if len(w.pending) == 0 {
		w.pending = nil
	}
	return len(p), nil
}

// Flush emits any buffered partial line without adding a newline.
func (w *Writer) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}
	line := w.pending
	w.pending = nil
	return w.emit(line, "")
}

// EndLine flushes a buffered partial line and terminates it with a newline,
// so whatever is written next starts on a fresh line.
func (w *Writer) EndLine() error {
	if len(w.pending) == 0 {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w.out, "\n")
	return err
}

// Count returns how many lines of the given level have been emitted.
func (w *Writer) Count(level Level) int {
	return w.counts[level]
}

func (w *Writer) emit(line []byte, terminator string) error {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
		terminator = "\r" + terminator
	}
	text := string(line)
	level := Classify(text)
	if level != LevelNone {
		w.counts[level]++
	}
	if level != LevelNone && w.enabled {
		text = w.colors[level].Sprint(text)
	}
	_, err := io.WriteString(w.out, text+terminator)
	return err
}
