package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/classreg/envsetup/internal/setup"
)

// Console prompts over plain line-oriented I/O. It serves pipes, scripts
// and --plain runs; form mode covers interactive terminals.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Input prompts for one field until the validator accepts. An empty line
// takes the default when the field has one.
func (c *Console) Input(ctx context.Context, f setup.Field) (string, error) {
	for {
		if ctx.Err() != nil {
			return "", ErrCancelled
		}
		if f.Default != "" {
			fmt.Fprintf(c.out, "%s [%s]: ", f.Prompt, f.Default)
		} else {
			fmt.Fprintf(c.out, "%s: ", f.Prompt)
		}
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		v := strings.TrimSpace(line)
		if v == "" {
			v = f.Default
		}
		if f.Validate != nil {
			if verr := f.Validate(v); verr != nil {
				fmt.Fprintf(c.out, "Invalid input: %v. Please try again.\n", verr)
				continue
			}
		}
		return v, nil
	}
}

// Confirm asks a yes/no question. Empty input takes the default; anything
// other than y/yes/n/no re-prompts.
func (c *Console) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		if ctx.Err() != nil {
			return false, ErrCancelled
		}
		fmt.Fprintf(c.out, "%s [%s]: ", title, hint)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, `Please answer "y" or "n".`)
	}
}

// readLine returns the next input line. Running out of input counts as
// the operator walking away and surfaces as a cancellation: a truncated
// script must not silently accept the remaining defaults. A final line
// without a trailing newline is still used.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
