package wizard

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// successNotes is shown after the file is written. Markdown, so glamour
// can style it on capable terminals.
const successNotes = "**Important:** never commit the `.env` file to version control.\n\n" +
	"- Make sure `.env` is listed in your `.gitignore`\n" +
	"- Rotate the JWT secret immediately if it is ever exposed\n"

// writeNotes renders the post-write notes, falling back to the raw
// markdown when no renderer can be built.
func writeNotes(w io.Writer) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Fprint(w, successNotes)
		return
	}
	rendered, err := renderer.Render(successNotes)
	if err != nil {
		fmt.Fprint(w, successNotes)
		return
	}
	fmt.Fprint(w, rendered)
}
