package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

// Console - line based terminal collaborator: prompts, yes/no questions,
// screen clearing and pacing.
type Console struct {
	in  *bufio.Reader
	out *termenv.Output

	pace      time.Duration
	retryText string
	profile   *termenv.Profile
	sleep     func(time.Duration)

	// lines is fed by readLoop once the first line is requested.
	lines   chan readResult
	readErr error
}

type readResult struct {
	line string
	err  error
}

type Option func(*Console)

// WithPace sets the cosmetic delay used by Pause. Zero disables pauses.
func WithPace(pace time.Duration) Option {
	return func(c *Console) {
		c.pace = pace
	}
}

// WithRetryText sets the message shown when a yes/no answer is not understood.
func WithRetryText(text string) Option {
	return func(c *Console) {
		c.retryText = text
	}
}

// WithProfile forces the colour profile, termenv.Ascii strips all styling.
func WithProfile(profile termenv.Profile) Option {
	return func(c *Console) {
		c.profile = &profile
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:        bufio.NewReader(in),
		retryText: "Sorry, please enter 'y' or 'n'.",
		sleep:     time.Sleep,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.profile != nil {
		c.out = termenv.NewOutput(out, termenv.WithProfile(*c.profile))
	} else {
		c.out = termenv.NewOutput(out)
	}

	return c
}

// PromptLine shows message, if any, and reads one line without its line ending.
// io.EOF is returned only when the input ends before any text. A cancelled ctx
// stops the wait with ctx.Err().
func (that *Console) PromptLine(ctx context.Context, message string) (string, error) {
	if message != "" {
		that.Say(message)
	}

	line, err := that.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ConfirmYesNo repeats the question until y, yes, n or no is given.
func (that *Console) ConfirmYesNo(ctx context.Context, message string) (bool, error) {
	that.Say(message)

	for {
		line, err := that.readLine(ctx)
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			return false, err
		}

		that.Say(that.retryText)
	}
}

// readLine waits for the next line from the reader goroutine or for ctx.
// A line that arrives after ctx is done is kept for the next call.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if that.lines == nil {
		that.lines = make(chan readResult)
		go that.readLoop()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result, ok := <-that.lines:
		if !ok {
			return "", that.readErr
		}
		return result.line, result.err
	}
}

func (that *Console) readLoop() {
	for {
		line, err := that.in.ReadString('\n')
		if err != nil {
			that.readErr = err
			if line != "" {
				that.lines <- readResult{line: line, err: err}
			}
			close(that.lines)
			return
		}

		that.lines <- readResult{line: line}
	}
}

func (that *Console) Say(message string) {
	fmt.Fprintln(that.out, message)
}

// Highlight prints message in bold, plain when colours are not supported.
func (that *Console) Highlight(message string) {
	fmt.Fprintln(that.out, that.out.String(message).Bold().String())
}

func (that *Console) Clear() {
	that.out.ClearScreen()
}

func (that *Console) Pause() {
	if that.pace <= 0 {
		return
	}

	that.sleep(that.pace)
}
