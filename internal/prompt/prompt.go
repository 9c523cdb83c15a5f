// Package prompt reads interactive answers from the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input ends before any answer was typed.
var ErrNoInput = errors.New("no input")

// Choice is one selectable entry offered with a prompt.
type Choice struct {
	Label string // shown to the user
	Value string // returned when picked
	Note  string // secondary line, may be empty
}

// Prompter asks the user for one answer. Implementations may ignore the
// choices and accept free text.
type Prompter interface {
	Ask(label string, choices []Choice) (string, error)
}

// LineReader reads single lines from r after writing a prompt to w.
type LineReader struct {
	r *bufio.Reader
	w io.Writer
}

// NewLineReader returns a LineReader over r that prints prompts to w.
func NewLineReader(r io.Reader, w io.Writer) *LineReader {
	return &LineReader{r: bufio.NewReader(r), w: w}
}

// ReadLine returns the next line without its line terminator.
// Carriage returns are dropped wherever they appear.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.ReplaceAll(line, "\r", ""), nil
}

// Ask writes label without a trailing newline and reads one line.
// The choices were already printed by the caller, so they are ignored.
func (l *LineReader) Ask(label string, _ []Choice) (string, error) {
	if _, err := fmt.Fprint(l.w, label); err != nil {
		return "", err
	}
	answer, err := l.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
