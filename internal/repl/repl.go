// Package repl runs a game session as a line-oriented read-evaluate-print loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jwebster45206/moltbook/pkg/game"
)

const inputPrompt = "> "

// REPL reads one command per line from in and writes responses to out.
type REPL struct {
	game   *game.Game
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

func New(g *game.Game, in io.Reader, out io.Writer, logger *slog.Logger) *REPL {
	return &REPL{
		game:   g,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run plays until the player quits, input ends, or ctx is cancelled (the
// interrupt signal). Every exit path prints a farewell. Commands are
// evaluated strictly one at a time.
func (r *REPL) Run(ctx context.Context) error {
	lines := r.readLines(ctx)

	r.println(r.game.Banner())
	r.println("")
	r.println(r.game.DescribeCurrentRoom())

	for {
		input, ok := r.readLine(ctx, lines, "\n"+inputPrompt)
		if !ok {
			r.println("\n" + game.InterruptFarewell)
			return nil
		}

		res := r.game.Handle(input)
		for res.Resume != nil {
			input, ok = r.readLine(ctx, lines, res.Prompt)
			if !ok {
				r.println("\n" + game.InterruptFarewell)
				return nil
			}
			res = res.Resume(input)
		}

		if res.Message != "" {
			r.println(res.Message)
		}
		if res.Quit {
			return nil
		}
	}
}

// readLines feeds input lines into a channel until input ends or ctx is done,
// so a blocked read never stops the loop from observing the interrupt.
func (r *REPL) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			r.logger.Warn("Input stream failed", "error", err)
		}
	}()
	return lines
}

func (r *REPL) readLine(ctx context.Context, lines <-chan string, prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}
