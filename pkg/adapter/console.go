package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
)

var ErrInputClosed = goerr.New("input closed")

// Input supplies one raw utterance per request cycle. A failure to
// capture input is non-fatal: the caller reports it and keeps going.
// ErrInputClosed means no more input will arrive.
type Input interface {
	Listen(ctx context.Context) (string, error)
}

// Output renders a response to the user, fire-and-forget
type Output interface {
	Say(ctx context.Context, text string)
}

// Console implements Input and Output over an interactive terminal
type Console struct {
	rl *readline.Instance
	w  io.Writer
}

// NewConsole creates a Console with the given prompt
func NewConsole(prompt string) (*Console, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize terminal input")
	}
	return &Console{rl: rl, w: rl.Stdout()}, nil
}

// Listen reads one line from the terminal
func (c *Console) Listen(ctx context.Context) (string, error) {
	line, err := c.rl.Readline()
	switch err {
	case nil:
		return strings.TrimSpace(line), nil
	case readline.ErrInterrupt, io.EOF:
		return "", ErrInputClosed
	default:
		return "", goerr.Wrap(err, "failed to read input")
	}
}

// Say prints a response line. Output errors are ignored; there is
// nothing useful to do about a broken terminal here.
func (c *Console) Say(ctx context.Context, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(c.w, text)
}

// Close releases the terminal
func (c *Console) Close() error {
	return c.rl.Close()
}
