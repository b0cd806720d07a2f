// Package prompt provides the interactive question/answer session used by
// the setup wizard.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// ErrClosed is returned when asking on a closed session.
var ErrClosed = errors.New("prompt session closed")

// Session owns the input stream for the lifetime of one wizard run.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	closer io.Closer
	closed bool
}

// NewSession reads answers from in and writes questions to out. If in
// implements io.Closer it is closed by Close.
func NewSession(in io.Reader, out io.Writer) *Session {
	s := &Session{in: bufio.NewReader(in), out: out}
	if c, ok := in.(io.Closer); ok && in != os.Stdin {
		s.closer = c
	}
	return s
}

// Ask prints question and returns the answer line without its line ending.
// End of input yields whatever was typed so far, usually "".
func (s *Session) Ask(question string) (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	_, _ = fmt.Fprint(s.out, question)

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read answer")
	}
	if errors.Is(err, io.EOF) {
		// keep the transcript readable when input is piped
		_, _ = fmt.Fprintln(s.out)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskDefault asks with the default shown and returns the raw answer;
// callers substitute the default for an empty answer.
func (s *Session) AskDefault(question, def string) (string, error) {
	return s.Ask(fmt.Sprintf("%s (default: %s): ", question, def))
}

// Confirm asks a y/n question. Only "y" or "yes" (any case) is affirmative.
func (s *Session) Confirm(question string) (bool, error) {
	answer, err := s.Ask(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// Close releases the session. Only the first call has an effect; it
// reports whether this call performed the close.
func (s *Session) Close() bool {
	if s.closed {
		return false
	}
	s.closed = true
	if s.closer != nil {
		_ = s.closer.Close()
	}
	return true
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// IsYes reports whether input is an affirmative answer. Besides a bare "y"
// it accepts "yes" in any case, ignoring surrounding whitespace.
func IsYes(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
