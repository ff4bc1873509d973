package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Terminal prints results to a writer. A terminal is never closed by the user.
type Terminal struct {
	w      io.Writer
	header *color.Color
}

// NewTerminalFactory returns a Factory producing terminals on w.
func NewTerminalFactory(w io.Writer) Factory {
	return func(title string) Surface {
		return &Terminal{w: w, header: color.New(color.FgCyan, color.Bold)}
	}
}

func (t *Terminal) Reveal() {}

func (t *Terminal) Update(c Content) {
	_, _ = t.header.Fprintf(t.w, "== %s ==\n", c.Title)
	text := strings.ReplaceAll(c.Text, "\r\n", "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = fmt.Fprint(t.w, text)
}

func (t *Terminal) OnDispose(func()) {}
