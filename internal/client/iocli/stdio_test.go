package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader("  user input \nsecond\nlast"), &out)

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	// без завершающего перевода строки
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", result)

	_, err = stdio.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPassword_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader("s3cret-password\n"), &out)

	pw, err := stdio.ReadPassword("Master password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret-password", pw)
	assert.Equal(t, "Master password: ", out.String())
}
