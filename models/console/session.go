package console

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const (
	ReadLoopRetry uint8 = iota
	ReadLoopBreak
)

// MaxLineLength caps a single input line. Longer lines are drained and
// rejected as malformed.
const MaxLineLength = 4096

// Session is the terminal conversation with the human player.
type Session struct {
	id  string
	in  *bufio.Reader
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		id:  base64.RawURLEncoding.EncodeToString([]byte(uuid.NewString()))[:12],
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Write(msg string) error {
	_, err := io.WriteString(s.out, msg)
	return err
}

func (s *Session) Writef(format string, args ...any) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}

// Prompt writes prompt and returns the next input line. A closed input
// yields io.EOF.
func (s *Session) Prompt(prompt string) (string, error) {
	if err := s.Write(prompt); err != nil {
		return "", err
	}

	return s.readLine()
}

// readLine returns the next line without its terminator. The whole line is
// consumed even when it is over MaxLineLength, so the next read starts clean.
func (s *Session) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			return "", err
		}

		if !tooLong {
			if len(line)+len(chunk) > MaxLineLength {
				tooLong = true
				line = append(line, chunk[:min(len(chunk), 16)]...)
			} else {
				line = append(line, chunk...)
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", cerr.ErrMalformedInput(string(line[:min(len(line), 16)])+"...", fmt.Sprintf("line longer than %d bytes", MaxLineLength))
	}
	return string(line), nil
}

// onReadErr decides whether a failed parse is shown to the player and
// retried, or ends the read loop.
func (s *Session) onReadErr(err error) uint8 {
	if cerr.HasCode(err, cerr.CodeMalformedInput) {
		if werr := s.Writef(MsgErrorTryAgain, err); werr != nil {
			return ReadLoopBreak
		}
		return ReadLoopRetry
	}
	return ReadLoopBreak
}

// ReadRequest prompts until parse accepts a line. Malformed input, overlong
// lines included, is reported and asked for again; I/O failures are returned.
func ReadRequest[T any](s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T

	for {
		line, err := s.Prompt(prompt)
		if err == nil {
			var req T
			if req, err = parse(line); err == nil {
				return req, nil
			}
		}

		if s.onReadErr(err) == ReadLoopBreak {
			return zero, err
		}
	}
}
