// Package prompt implements inspector.Prompter over a line-oriented terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"shaderinspector/internal/inspector"
)

// Terminal reads answers one line at a time. End of input dismisses the
// current prompt.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Terminal reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	dimColor   = color.New(color.Faint)
)

// Pick lists items numbered from 1. An empty answer selects def; an answer
// may also be an item label.
func (t *Terminal) Pick(ctx context.Context, title string, items []inspector.PickItem, def int) (int, bool, error) {
	titleColor.Fprintln(t.out, title)
	for i, it := range items {
		marker := " "
		if i == def {
			marker = "*"
		}
		fmt.Fprintf(t.out, "%s %d) %s", marker, i+1, it.Label)
		if it.Description != "" {
			dimColor.Fprintf(t.out, "  %s", it.Description)
		}
		fmt.Fprintln(t.out)
	}
	for {
		fmt.Fprintf(t.out, "> [%d] ", def+1)
		line, ok, err := t.readLine(ctx)
		if err != nil || !ok {
			return -1, false, err
		}
		if line == "" {
			return def, true, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(items) {
			return n - 1, true, nil
		}
		for i, it := range items {
			if strings.EqualFold(it.Label, line) {
				return i, true, nil
			}
		}
		fmt.Fprintf(t.out, "invalid choice %q\n", line)
	}
}

// Input asks for free text. An empty answer keeps value.
func (t *Terminal) Input(ctx context.Context, prompt, value string) (string, bool, error) {
	titleColor.Fprint(t.out, prompt)
	if value != "" {
		dimColor.Fprintf(t.out, " [%s]", value)
	}
	fmt.Fprint(t.out, ": ")
	line, ok, err := t.readLine(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	if line == "" {
		return value, true, nil
	}
	return line, true, nil
}

func (t *Terminal) readLine(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	line, err := t.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			fmt.Fprintln(t.out)
			return "", false, nil
		}
	} else if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), true, nil
}
