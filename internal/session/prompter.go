package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

type readResult struct {
	line string
	err  error
}

// Prompter writes a prompt and reads one trimmed line of input. Lines of
// any length are accepted. A read is only started when Ask is called, so
// nothing is consumed ahead of the caller.
type Prompter struct {
	reader  *bufio.Reader
	out     io.Writer
	results chan readResult
	pending bool
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader:  bufio.NewReader(r),
		out:     w,
		results: make(chan readResult, 1),
	}
}

// Ask returns io.EOF once the input is exhausted and ctx.Err() when ctx
// ends while waiting for a line. A line still being read after a
// cancellation is delivered to the next Ask.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return "", err
		}
	}

	if !p.pending {
		p.pending = true

		go p.readLine()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.results:
		p.pending = false

		return r.line, r.err
	}
}

func (p *Prompter) readLine() {
	line, err := p.reader.ReadString('\n')

	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// last line without a trailing newline
		err = nil
	default:
		line = ""
	}

	p.results <- readResult{line: strings.TrimSpace(line), err: err}
}
