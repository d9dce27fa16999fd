package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskTrimsInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  hello  \n"), &out)

	got, err := p.Ask("Name: ")

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Name: ", out.String())
}

func TestAskStreamEnd(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Ask("Name: ")

	assert.ErrorIs(t, err, ErrEOF)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit("Q"))
	assert.True(t, IsQuit("q"))
	assert.False(t, IsQuit("quit"))
	assert.False(t, IsQuit(""))
}
