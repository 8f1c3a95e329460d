// Package console runs the interactive terminal loop.
//
// Each round prints the candidate count, the proposed guess and a few
// alternates, then reads one line of feedback:
//
//	bgyyb   one symbol per letter (b=black, y=yellow, g=green)
//	w       the puzzle was solved
//	c       a different word was entered (asked for next), or "c WORD"
//
// End of input or context cancellation ends the loop with ErrQuit.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle-assist/internal/session"
	"github.com/robalobadob/wordle-assist/internal/solver"
)

// ErrQuit is returned when the player stops (EOF, interrupt, or "n").
var ErrQuit = errors.New("quit")

// Factory creates the session for each new puzzle.
type Factory func() (*session.Session, error)

type Console struct {
	out        io.Writer
	lines      <-chan string
	newSession Factory
	color      bool
}

type Option func(*Console)

// WithColor enables ANSI colouring of feedback tiles.
func WithColor(enabled bool) Option { return func(c *Console) { c.color = enabled } }

// New starts reading lines from in. The reader goroutine exits at EOF.
func New(in io.Reader, out io.Writer, newSession Factory, opts ...Option) *Console {
	c := &Console{out: out, lines: scanLines(in), newSession: newSession}
	for _, o := range opts {
		o(c)
	}
	return c
}

func scanLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			ch <- sc.Text()
		}
	}()
	return ch
}

// Run plays puzzles until the player declines another one.
// It always returns a non-nil error; ErrQuit signals a normal exit.
func (c *Console) Run(ctx context.Context) error {
	for {
		sess, err := c.newSession()
		if err != nil {
			return err
		}
		if err := c.Play(ctx, sess); err != nil {
			return err
		}
		ans, err := c.readLine(ctx, "Play again? (y/n): ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out)
		if strings.TrimSpace(ans) != "y" {
			return ErrQuit
		}
	}
}

// Play runs one puzzle to a terminal state.
func (c *Console) Play(ctx context.Context, sess *session.Session) error {
	for !sess.State().Terminal() {
		if sess.Round() == solver.MaxGuesses-1 {
			fmt.Fprintln(c.out, "last guess! :o")
		}
		guess, err := sess.Next()
		if errors.Is(err, solver.ErrNoCandidates) {
			fmt.Fprintln(c.out, "No words match constraints")
			return nil
		}
		if err != nil {
			return err
		}
		v := sess.View()
		fmt.Fprintf(c.out, "%d possible words.\n", v.Candidates)
		fmt.Fprintf(c.out, "Try '%s'. Alternate words: %v\n", guess, v.Alternates)

		if err := c.collect(ctx, sess); err != nil {
			sess.Abandon()
			return err
		}
	}

	switch sess.State() {
	case session.StateSolved:
		fmt.Fprintf(c.out, "Win in %d guesses!\n", sess.Round())
	case session.StateExhausted:
		v := sess.View()
		fmt.Fprintln(c.out, "Loss :(")
		fmt.Fprintf(c.out, "%d remaining words: %v\n", v.Candidates, v.Remaining)
	}
	return nil
}

// collect reads input until one round has been applied.
func (c *Console) collect(ctx context.Context, sess *session.Session) error {
	for {
		prompt := fmt.Sprintf("Guessed '%s'. What was result? (b=black, y=yellow, g=green, w=win, c=change word): ", sess.Guess())
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return err
		}
		in, err := session.ParseInput(line)
		if err != nil {
			fmt.Fprintln(c.out, "invalid input. Try again.")
			continue
		}

		if in.Kind == session.InputChange {
			if in.Word == "" {
				w, err := c.readLine(ctx, "What was alternate word entered?: ")
				if err != nil {
					return err
				}
				in.Word = strings.TrimSpace(w)
			}
			if err := sess.Submit(in); err != nil {
				fmt.Fprintln(c.out, "invalid input. Try again.")
				continue
			}
			fmt.Fprintf(c.out, "captured new guess '%s'. Enter result.\n", in.Word)
			continue
		}

		guess := sess.Guess()
		if err := sess.Submit(in); err != nil {
			return err
		}
		if in.Kind == session.InputFeedback && sess.State() != session.StateSolved {
			c.printConstraints(guess, in.Feedback, sess.View())
		}
		return nil
	}
}

func (c *Console) printConstraints(guess string, fb solver.Feedback, v session.View) {
	fmt.Fprintln(c.out, c.tiles(guess, fb))
	fmt.Fprintf(c.out, "glob = '%s'\n", v.Pattern)
	fmt.Fprintf(c.out, "must include %v\n", strings.Split(v.Required, "")) // "" splits to []
}

// tiles renders the guess as coloured letters.
func (c *Console) tiles(guess string, fb solver.Feedback) string {
	var b strings.Builder
	for i := 0; i < solver.WordLen; i++ {
		l := strings.ToUpper(guess[i : i+1])
		if c.color {
			l = color.Ize(markColor(fb[i]), l)
		}
		b.WriteString(l)
	}
	return b.String()
}

func markColor(m solver.Mark) string {
	switch m {
	case solver.MarkConfirmed:
		return color.Green
	case solver.MarkPresent:
		return color.Yellow
	}
	return color.Gray
}

// readLine prints prompt and waits for the next line.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ErrQuit
	case line, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.out)
			return "", ErrQuit
		}
		return line, nil
	}
}
