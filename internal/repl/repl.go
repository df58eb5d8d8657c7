// Package repl implements the interactive read loop that drives the
// expression pipeline: it reads a line, dispatches it, prints the outcome
// and keeps accepting input. A bad expression never terminates the
// session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/codehardth/calc/internal/expression"
)

const helpText = `Enter an arithmetic expression to evaluate it.

Supported syntax:
  numbers      integer and decimal literals (2, 3.14, .5)
  operators    + - * / and unary minus
  grouping     parentheses

Commands:
  help         show this message
  history      show recently evaluated expressions
  clear        clear the screen
  exit, quit   leave the calculator
`

const clearScreen = "\x1b[2J\x1b[H"

// REPL reads expressions from in and writes results to out. The prompt is
// printed before each read when non-empty; pass an empty prompt for
// non-interactive input.
type REPL struct {
	in          io.Reader
	out         io.Writer
	prompt      string
	historySize int
	history     []string
}

func New(in io.Reader, out io.Writer, prompt string, historySize int) *REPL {
	return &REPL{
		in:          in,
		out:         out,
		prompt:      prompt,
		historySize: historySize,
	}
}

// Run loops until exit/quit, end of input, or a read error.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)
	for {
		if r.prompt != "" {
			fmt.Fprint(r.out, r.prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}

		switch line := strings.TrimSpace(scanner.Text()); line {
		case "":
			// skip blank lines
		case "help":
			fmt.Fprint(r.out, helpText)
		case "history":
			for _, entry := range r.history {
				fmt.Fprintln(r.out, entry)
			}
		case "clear":
			fmt.Fprint(r.out, clearScreen)
		case "exit", "quit":
			return nil
		default:
			r.remember(line)
			fmt.Fprintln(r.out, EvalLine(line))
		}
	}
}

// EvalLine evaluates a single expression and renders the outcome the way
// the loop prints it: the formatted value, or "Error: <message>".
func EvalLine(line string) string {
	v, err := expression.EvaluateString(line).Unwrap()
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	return expression.FormatValue(v)
}

func (r *REPL) remember(line string) {
	if r.historySize <= 0 {
		return
	}
	r.history = append(r.history, line)
	if len(r.history) > r.historySize {
		r.history = r.history[len(r.history)-r.historySize:]
	}
}
