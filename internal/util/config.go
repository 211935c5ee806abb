package util

// Config holds runtime settings and flags.
type Config struct {
	OutputPath string
	Force      bool
	Plain      bool
	Theme      string // charm|dracula|catppuccin|base16
	Verbose    bool
}
