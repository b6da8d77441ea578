package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string, opts ...Option) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	opts = append([]Option{WithProfile(termenv.Ascii)}, opts...)

	return New(strings.NewReader(input), out, opts...), out
}

func TestConsole_PromptLine(t *testing.T) {
	t.Run("Reads one line and shows the prompt", func(t *testing.T) {
		// Given: a console with two lines of input
		c, out := newTestConsole("Ann\r\nBob\n")

		// When: prompting twice
		first, err := c.PromptLine(context.Background(), "What's your name?")
		require.NoError(t, err)
		second, err := c.PromptLine(context.Background(), "Again?")
		require.NoError(t, err)

		// Then: line endings are stripped and prompts are written
		assert.Equal(t, "Ann", first)
		assert.Equal(t, "Bob", second)
		assert.Equal(t, "What's your name?\nAgain?\n", out.String())
	})

	t.Run("Last line without newline is returned", func(t *testing.T) {
		c, _ := newTestConsole("tail")

		line, err := c.PromptLine(context.Background(), "?")

		require.NoError(t, err)
		assert.Equal(t, "tail", line)
	})

	t.Run("EOF is reported", func(t *testing.T) {
		c, _ := newTestConsole("")

		_, err := c.PromptLine(context.Background(), "?")

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_ConfirmYesNo(t *testing.T) {
	t.Run("Retries until a yes or no answer", func(t *testing.T) {
		// Given: garbage, then YES
		c, out := newTestConsole("maybe\n\nYES\n", WithRetryText("y or n please"))

		// When: asking
		answer, err := c.ConfirmYesNo(context.Background(), "Play again?")

		// Then: the answer is yes and the retry text was shown twice
		require.NoError(t, err)
		assert.True(t, answer)
		assert.Equal(t, 2, strings.Count(out.String(), "y or n please"))
	})

	t.Run("No answers false", func(t *testing.T) {
		c, _ := newTestConsole(" n \n")

		answer, err := c.ConfirmYesNo(context.Background(), "Play again?")

		require.NoError(t, err)
		assert.False(t, answer)
	})

	t.Run("EOF before an answer is an error", func(t *testing.T) {
		c, _ := newTestConsole("what\n")

		_, err := c.ConfirmYesNo(context.Background(), "Play again?")

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_Pause(t *testing.T) {
	t.Run("Zero pace never sleeps", func(t *testing.T) {
		c, _ := newTestConsole("")
		c.sleep = func(time.Duration) { t.Fatal("unexpected sleep") }

		c.Pause()
	})

	t.Run("Pace is passed to sleep", func(t *testing.T) {
		c, _ := newTestConsole("", WithPace(150*time.Millisecond))

		var slept time.Duration
		c.sleep = func(d time.Duration) { slept += d }

		c.Pause()

		assert.Equal(t, 150*time.Millisecond, slept)
	})
}

func TestConsole_Highlight(t *testing.T) {
	// Given: an ascii console
	c, out := newTestConsole("")

	// When: highlighting
	c.Highlight("SCOREBOARD:")

	// Then: the text is written without styling
	assert.Equal(t, "SCOREBOARD:\n", out.String())
}

func TestConsole_PromptLineWithoutMessage(t *testing.T) {
	// Given: an empty prompt
	c, out := newTestConsole("4\n")

	// When: reading a line
	line, err := c.PromptLine(context.Background(), "")

	// Then: nothing is written
	require.NoError(t, err)
	assert.Equal(t, "4", line)
	assert.Empty(t, out.String())
}

func TestConsole_Cancel(t *testing.T) {
	t.Run("Cancel while waiting for input", func(t *testing.T) {
		// Given: an input that never delivers a line
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		c := New(reader, &bytes.Buffer{}, WithProfile(termenv.Ascii))
		ctx, cancel := context.WithCancel(context.Background())

		// When: the context is cancelled while PromptLine blocks
		done := make(chan error, 1)
		go func() {
			_, err := c.PromptLine(ctx, "Choose one")
			done <- err
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		// Then: PromptLine returns the cancellation
		select {
		case err := <-done:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("PromptLine did not return after cancel")
		}
	})

	t.Run("Cancelled context is reported before reading", func(t *testing.T) {
		c, _ := newTestConsole("y\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ConfirmYesNo(ctx, "Play again?")

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Line typed after a cancel is kept", func(t *testing.T) {
		// Given: a cancelled wait
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		c := New(reader, &bytes.Buffer{}, WithProfile(termenv.Ascii))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := c.PromptLine(ctx, "")
		require.ErrorIs(t, err, context.DeadlineExceeded)

		// When: a line arrives and is read with a live context
		go func() { _, _ = writer.Write([]byte("rock\n")) }()
		line, err := c.PromptLine(context.Background(), "")

		// Then: the line is returned
		require.NoError(t, err)
		assert.Equal(t, "rock", line)
	})
}
