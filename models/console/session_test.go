package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequestRetriesMalformedInput(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("hello\n3\n2 5\n"), &out)

	req, err := ReadRequest(s, MsgPromptAttack, ParseAttack)
	require.NoError(t, err)
	assert.Equal(t, ReqAttack{X: 2, Y: 5}, req)

	written := out.String()
	assert.Equal(t, 3, strings.Count(written, MsgPromptAttack))
	assert.Equal(t, 2, strings.Count(written, "Try again"))
}

func TestReadRequestRejectsOverlongLine(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(strings.Repeat("a", 70000)+"\n2 5\n"), &out)

	req, err := ReadRequest(s, MsgPromptAttack, ParseAttack)
	require.NoError(t, err)
	assert.Equal(t, ReqAttack{X: 2, Y: 5}, req)
	assert.Equal(t, 1, strings.Count(out.String(), "Try again"))
	assert.Less(t, out.Len(), 1000)
}

func TestPromptLineAtLimit(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("7", MaxLineLength)
	s := NewSession(strings.NewReader(long+"\r\n"+long+"8\nlast"), &out)

	line, err := s.Prompt(MsgPromptAttack)
	require.NoError(t, err)
	assert.Equal(t, long, line)

	_, err = s.Prompt(MsgPromptAttack)
	assert.True(t, cerr.HasCode(err, cerr.CodeMalformedInput))

	line, err = s.Prompt(MsgPromptAttack)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = s.Prompt(MsgPromptAttack)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadRequestClosedInput(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("nonsense\n"), &out)

	_, err := ReadRequest(s, MsgPromptAttack, ParseAttack)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("y\n"), &out)

	line, err := s.Prompt(MsgPromptRematch)
	require.NoError(t, err)
	assert.Equal(t, "y", line)
	assert.Equal(t, MsgPromptRematch, out.String())

	_, err = s.Prompt(MsgPromptRematch)
	assert.ErrorIs(t, err, io.EOF)
	assert.NotEmpty(t, s.Id())
}
