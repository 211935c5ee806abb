package wizard

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/classreg/envsetup/internal/setup"
)

// Forms prompts with huh forms, one per question, each wrapped in its own
// bubbletea program so esc and ctrl+c cancel every field type the same way.
type Forms struct {
	theme *huh.Theme
}

func NewForms(t Theme) *Forms {
	return &Forms{theme: huhTheme(t)}
}

func (p *Forms) Input(ctx context.Context, f setup.Field) (string, error) {
	value := f.Default

	var field huh.Field
	if len(f.Options) > 0 {
		opts := make([]huh.Option[string], len(f.Options))
		for i, o := range f.Options {
			opts[i] = huh.NewOption(o, o)
		}
		field = huh.NewSelect[string]().
			Title(f.Prompt).
			Options(opts...).
			Value(&value)
	} else {
		in := huh.NewInput().
			Title(f.Prompt).
			Value(&value)
		if f.Validate != nil {
			in = in.Validate(f.Validate)
		}
		if f.Secret {
			in = in.EchoMode(huh.EchoModePassword)
		}
		field = in
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = f.Default
	}
	return value, nil
}

func (p *Forms) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

// run drives a single-field form to completion.
func (p *Forms) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithTheme(p.theme)
	model, err := tea.NewProgram(newFormModel(form), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		return err
	}
	if m, ok := model.(*formModel); ok && m.cancelled {
		return ErrCancelled
	}
	return nil
}

// formModel hosts a huh form as a standalone bubbletea model. Cancel keys
// are intercepted ahead of the form so they behave identically on inputs,
// selects and confirms.
type formModel struct {
	form      *huh.Form
	done      bool
	cancelled bool
}

func newFormModel(form *huh.Form) *formModel {
	return &formModel{form: form}
}

func (m *formModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
		return m, tea.Quit
	case huh.StateAborted:
		m.done = true
		m.cancelled = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *formModel) View() string {
	if m.done {
		return ""
	}
	return m.form.View()
}
