// Package wizard drives the interactive configuration session: warn about
// an existing file, collect every field with validation and defaults,
// write the grouped env file.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/classreg/envsetup/internal/envfile"
	"github.com/classreg/envsetup/internal/setup"
)

// ErrCancelled reports that the operator ended the session on purpose:
// declining the overwrite prompt, pressing esc, or closing stdin. Callers
// treat it as a clean exit, unlike a write failure.
var ErrCancelled = errors.New("setup cancelled")

// Prompter asks the operator for values. Implementations substitute the
// field default on empty input and re-prompt until the validator accepts.
type Prompter interface {
	Input(ctx context.Context, f setup.Field) (string, error)
	Confirm(ctx context.Context, title string, def bool) (bool, error)
}

// Options configure a session.
type Options struct {
	OutputPath string
	// Force skips the overwrite confirmation.
	Force bool
}

// Session owns one wizard run from banner to written file.
type Session struct {
	prompt Prompter
	out    io.Writer
	log    *log.Logger
	opts   Options
}

func NewSession(prompt Prompter, out io.Writer, logger *log.Logger, opts Options) *Session {
	if opts.OutputPath == "" {
		opts.OutputPath = ".env"
	}
	return &Session{prompt: prompt, out: out, log: logger, opts: opts}
}

// Run walks the whole flow. It returns ErrCancelled when the operator
// backs out, and the wrapped I/O error when the final write fails.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, ErrCancelled) {
		fmt.Fprintln(s.out, warnStyle.Render("Setup cancelled."))
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	s.banner()

	prefill, err := s.checkExisting(ctx)
	if err != nil {
		return err
	}

	rec := setup.NewRecord()
	if err := s.collect(ctx, rec, prefill); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nWriting %s...\n", s.opts.OutputPath)
	if err := envfile.Write(s.opts.OutputPath, rec); err != nil {
		s.log.Error("write failed", "path", s.opts.OutputPath, "err", err)
		return err
	}
	s.log.Debug("env file written", "path", s.opts.OutputPath, "fields", rec.Len())

	s.success()
	return nil
}

// checkExisting handles a pre-existing output file: confirm the overwrite,
// then offer the old values as this session's defaults.
func (s *Session) checkExisting(ctx context.Context) (map[string]string, error) {
	path := s.opts.OutputPath
	if s.opts.Force || !envfile.Exists(path) {
		return nil, nil
	}

	fmt.Fprintln(s.out, warnStyle.Render(fmt.Sprintf("Warning: %s already exists!", path)))
	overwrite, err := s.prompt.Confirm(ctx, "Do you want to overwrite it?", false)
	if err != nil {
		return nil, err
	}
	if !overwrite {
		return nil, ErrCancelled
	}

	values, err := envfile.Load(path)
	if err != nil {
		// Unparseable old file, collect from scratch.
		s.log.Debug("existing file not parseable", "path", path, "err", err)
		return nil, nil
	}
	keep, err := s.prompt.Confirm(ctx, "Start from the existing values?", true)
	if err != nil {
		return nil, err
	}
	if !keep {
		return nil, nil
	}
	s.log.Debug("prefilled defaults from existing file", "fields", len(values))
	return values, nil
}

func (s *Session) collect(ctx context.Context, rec *setup.Record, prefill map[string]string) error {
	for _, sec := range setup.Sections() {
		s.section(sec.Name)
		for _, f := range sec.Fields {
			f = withPrefill(f, prefill)
			var err error
			switch f.Key {
			case setup.KeyJWTSecret:
				err = s.askSecret(ctx, rec, f)
			case setup.KeyDynamoDBEndpoint:
				err = s.askEndpoint(ctx, rec, f, prefill)
			default:
				err = s.ask(ctx, rec, f)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) ask(ctx context.Context, rec *setup.Record, f setup.Field) error {
	v, err := s.prompt.Input(ctx, f)
	if err != nil {
		return err
	}
	rec.Set(f.Key, v)
	return nil
}

// askSecret offers to generate the JWT secret before falling back to
// manual entry.
func (s *Session) askSecret(ctx context.Context, rec *setup.Record, f setup.Field) error {
	auto, err := s.prompt.Confirm(ctx, "Generate a secure JWT secret automatically?", true)
	if err != nil {
		return err
	}
	if !auto {
		return s.ask(ctx, rec, f)
	}
	secret, err := setup.GenerateSecret()
	if err != nil {
		return err
	}
	rec.Set(f.Key, secret)
	fmt.Fprintln(s.out, successStyle.Render("Generated JWT secret: "+previewSecret(secret)))
	return nil
}

// askEndpoint gates the optional database block behind a confirm. Saying
// no leaves the key unset, so the section disappears from the file.
func (s *Session) askEndpoint(ctx context.Context, rec *setup.Record, f setup.Field, prefill map[string]string) error {
	use, err := s.prompt.Confirm(ctx, "Use local DynamoDB endpoint?", prefill[f.Key] != "")
	if err != nil {
		return err
	}
	if !use {
		return nil
	}
	return s.ask(ctx, rec, f)
}

// withPrefill swaps the catalog default for a previous value when it still
// passes the field's validator. Secret values never round-trip into
// prompts.
func withPrefill(f setup.Field, prefill map[string]string) setup.Field {
	if f.Secret || len(prefill) == 0 {
		return f
	}
	v, ok := prefill[f.Key]
	if !ok || v == "" {
		return f
	}
	if f.Validate != nil && f.Validate(v) != nil {
		return f
	}
	f.Default = v
	return f
}

func (s *Session) banner() {
	rule := ruleStyle.Render(strings.Repeat("=", 60))
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, bannerStyle.Render("Class Registration App - Environment Configuration Setup"))
	fmt.Fprintln(s.out, rule)
}

func (s *Session) section(name string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, sectionStyle.Render(name))
	fmt.Fprintln(s.out, ruleStyle.Render(strings.Repeat("-", 60)))
}

func (s *Session) success() {
	abs, err := filepath.Abs(s.opts.OutputPath)
	if err != nil {
		abs = s.opts.OutputPath
	}
	fmt.Fprintf(s.out, "\n%s Created %s\n\n", successStyle.Render("✓"), abs)
	writeNotes(s.out)
}

// previewSecret shortens a generated secret for on-screen echo.
func previewSecret(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:16] + "..."
}
