package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer

	ctx := context.Background()
	p := NewPrompter(strings.NewReader("  Dune \r\nlast"), &out)

	got, err := p.Ask(ctx, "Title: ")
	require.NoError(t, err)
	assert.Equal(t, "Dune", got)
	assert.Equal(t, "Title: ", out.String())

	got, err = p.Ask(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Ask(ctx, "again: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)

	p := NewPrompter(strings.NewReader(long+"\nnext\n"), io.Discard)

	got, err := p.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, len(long))

	got, err = p.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestPrompter_CancelWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	p := NewPrompter(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Ask(ctx, "")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the outstanding read is handed to the next caller
	go func() { _, _ = io.WriteString(w, "late\n") }()

	got, err := p.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "late", got)
}
