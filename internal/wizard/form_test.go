package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormModel() *formModel {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Server port").Value(&value),
	))
	return newFormModel(form)
}

func TestFormModel_StartsInProgress(t *testing.T) {
	m := newTestFormModel()
	assert.False(t, m.done)
	assert.False(t, m.cancelled)
}

func TestFormModel_EscCancels(t *testing.T) {
	m := newTestFormModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	fm, ok := updated.(*formModel)
	require.True(t, ok)

	assert.True(t, fm.done)
	assert.True(t, fm.cancelled)
	assert.NotNil(t, cmd, "cancel must quit the program")
	assert.Equal(t, "", fm.View(), "finished prompts leave no residue on screen")
}

func TestFormModel_CtrlCCancels(t *testing.T) {
	m := newTestFormModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	fm := updated.(*formModel)

	assert.True(t, fm.done)
	assert.True(t, fm.cancelled)
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"base16", "catppuccin", "charm", "dracula"}, names)
}

func TestHuhTheme_FallsBackOnUnknown(t *testing.T) {
	assert.NotNil(t, huhTheme(Theme("bogus")))
	for _, name := range ThemeNames() {
		assert.NotNil(t, huhTheme(Theme(name)), name)
	}
}
