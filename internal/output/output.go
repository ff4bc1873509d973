// Package output renders compiler results onto a display surface.
//
// A Surface is the host-side view the inspector shows results on. The HTTP
// daemon uses a Board holding at most one Panel that editors poll and close;
// the CLI uses a Terminal that prints to a writer.
package output

import (
	"fmt"
	"html"
	"strings"
)

// Content is one rendered compiler result.
type Content struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

// Surface is a reusable display area.
type Surface interface {
	// Reveal brings an existing surface to the foreground.
	Reveal()
	// Update replaces the displayed content.
	Update(Content)
	// OnDispose registers fn to run once when the user closes the surface.
	OnDispose(fn func())
}

// Factory creates a new surface titled title.
type Factory func(title string) Surface

// Style copies the editor font into the rendered page.
type Style struct {
	FontFamily string
	FontSize   string
}

// TextToHTML wraps compiler text in a minimal page, escaping markup and
// turning line breaks into <br>.
func TextToHTML(text string, st Style) string {
	body := html.EscapeString(text)
	body = strings.ReplaceAll(body, "\r\n", "<br>")
	body = strings.ReplaceAll(body, "\n", "<br>")
	head := fmt.Sprintf("<head><style>\nbody {\n\tfont-family: %s;\n\tfont-size: %spx;\n}\n</style></head>", st.FontFamily, st.FontSize)
	return "<html>" + head + "<body>" + body + "</body></html>"
}

// Render builds the Content for a title and raw text.
func Render(title, text string, st Style) Content {
	return Content{Title: title, Text: text, HTML: TextToHTML(text, st)}
}
