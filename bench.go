package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle-assist/internal/session"
	"github.com/robalobadob/wordle-assist/internal/solver"
)

// benchStats is the guess-count distribution over autoplayed answers.
// dist[0] counts failures.
type benchStats struct {
	games  int
	solved int
	total  int
	dist   [solver.MaxGuesses + 1]int
}

func (b *benchStats) add(r session.Result) {
	b.games++
	if !r.Solved {
		b.dist[0]++
		return
	}
	b.solved++
	b.total += len(r.Guesses)
	b.dist[len(r.Guesses)]++
}

func (b *benchStats) average() float64 {
	if b.solved == 0 {
		return 0
	}
	return float64(b.total) / float64(b.solved)
}

func (b *benchStats) String() string {
	var sb strings.Builder
	for i := 1; i <= solver.MaxGuesses; i++ {
		fmt.Fprintf(&sb, "%d guesses: %d\n", i, b.dist[i])
	}
	fmt.Fprintf(&sb, "failed: %d\n", b.dist[0])
	fmt.Fprintf(&sb, "solved %d/%d, average %.3f guesses\n", b.solved, b.games, b.average())
	return sb.String()
}

// solveOne autoplays a single known answer, which must be in the dictionary.
func solveOne(a *app, answer string) (session.Result, error) {
	if !solver.ValidWord(answer) || !a.dict.Contains(answer) {
		return session.Result{}, fmt.Errorf("%q: %w", answer, solver.ErrInvalidWord)
	}
	sess, err := a.newSession()
	if err != nil {
		return session.Result{}, err
	}
	res, err := session.Autoplay(sess, answer)
	if errors.Is(err, solver.ErrNoCandidates) {
		return res, nil
	}
	return res, err
}

// runBench autoplays the first n dictionary words, reporting progress to w.
func runBench(ctx context.Context, a *app, n int, w io.Writer) (*benchStats, error) {
	answers := a.dict.Head(n)
	bar := progressbar.NewOptions(len(answers),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionShowCount(),
	)
	st := &benchStats{}
	for _, ans := range answers {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		res, err := solveOne(a, ans)
		if err != nil {
			return st, fmt.Errorf("autoplay %q: %w", ans, err)
		}
		st.add(res)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return st, nil
}
