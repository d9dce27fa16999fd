// =============================================================================
// Point-of-Sale Invoice Generator - Prompt Module
// =============================================================================
//
// Thin wrapper around the interactive console. All blocking input goes
// through a Prompter so the session loop and the customer collector can be
// driven by scripted input in tests.
//
// =============================================================================

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrQuit is returned when the operator enters the quit sentinel ("Q") at a
// prompt where it terminates the whole session.
var ErrQuit = errors.New("session aborted by operator")

// ErrEOF is returned when the input stream ends before a prompt is answered.
var ErrEOF = errors.New("input stream closed")

// Prompter reads operator input line by line and writes UI text.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prints a label and returns the next input line, trimmed of surrounding
// whitespace.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// IsQuit reports whether the input is the quit sentinel.
func IsQuit(input string) bool {
	return strings.EqualFold(input, "Q")
}

// Printf writes formatted UI text.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a UI line.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
