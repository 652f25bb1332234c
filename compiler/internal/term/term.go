// Package term holds the console helpers shared by cslex commands. The
// print helpers drop (n, err) so linters don't complain about unhandled
// fmt results.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Wprintf writes formatted text to any io.Writer.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

// Bprintf writes formatted text into a strings.Builder.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }

// Logger writes progress lines to a writer (stderr by default) with a
// "cslex: " prefix. Verbosef lines only appear when Verbose is set.
type Logger struct {
	W       io.Writer
	Verbose bool
}

// NewLogger returns a logger writing to w; a nil w means stderr.
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{W: w, Verbose: verbose}
}

func (l *Logger) out() io.Writer {
	if l == nil || l.W == nil {
		return os.Stderr
	}
	return l.W
}

// Verbosef prints only in verbose mode.
func (l *Logger) Verbosef(format string, a ...any) {
	if l == nil || !l.Verbose {
		return
	}
	Wprintf(l.out(), "cslex: "+format+"\n", a...)
}

// Warnf prints with a warning marker.
func (l *Logger) Warnf(format string, a ...any) {
	Wprintf(l.out(), "cslex: warning: "+format+"\n", a...)
}
