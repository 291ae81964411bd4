package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/inboxsim/internal/domain"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyDefinitions_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range AllKeyDefinitions {
		assert.False(t, seen[def.Name], "duplicate key name %s", def.Name)
		seen[def.Name] = true
		assert.NotEmpty(t, def.Defaults, def.Name)
		assert.NotEmpty(t, def.Help, def.Name)
	}
	assert.Len(t, GetValidKeyNames(), len(AllKeyDefinitions))
}

func TestIsValidKeyName(t *testing.T) {
	assert.True(t, IsValidKeyName("report"))
	assert.False(t, IsValidKeyName("kill"))
}

func TestNewKeyMap_Overrides(t *testing.T) {
	keys := NewKeyMap(map[string][]string{"report": {"R", "ctrl+r"}})

	assert.True(t, key.Matches(runeKey("R"), keys.Email.Report))
	assert.False(t, key.Matches(runeKey("!"), keys.Email.Report))
	assert.Equal(t, "R/ctrl+r", keys.Email.Report.Help().Key)
	assert.True(t, key.Matches(runeKey("d"), keys.Email.Delete))
}

func TestNewKeyMap_EmptyOverrideKeepsDefault(t *testing.T) {
	keys := NewKeyMap(map[string][]string{"star": {}})
	assert.True(t, key.Matches(runeKey("s"), keys.Email.Star))
}

func TestKeyMap_ApplyButtons(t *testing.T) {
	keys := NewKeyMap(nil)
	keys.ApplyButtons(domain.Buttons{Star: true})

	assert.True(t, keys.Email.Star.Enabled())
	assert.False(t, keys.Email.Delete.Enabled())
	assert.False(t, keys.Email.Report.Enabled())
	assert.False(t, keys.Email.Unread.Enabled())

	for _, b := range keys.ShortHelp() {
		assert.NotEqual(t, "delete email", b.Help().Desc)
		assert.NotEqual(t, "report phishing", b.Help().Desc)
	}
}
