package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are what settings.json uses to override defaults.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "abort run (operator)"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts"},
	{Name: "next_session", Defaults: []string{"N"}, Help: "finish this session"},
	{Name: "primary_task", Defaults: []string{"T"}, Help: "open task notes"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next email"},
	{Name: "open", Defaults: []string{"enter"}, Help: "open email"},
	{Name: "scroll_down", Defaults: []string{"pgdown", "ctrl+d"}, Help: "scroll email down"},
	{Name: "scroll_up", Defaults: []string{"pgup", "ctrl+u"}, Help: "scroll email up"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous email"},

	// Email action keys
	{Name: "attachments", Defaults: []string{"o"}, Help: "open attachment"},
	{Name: "delete", Defaults: []string{"d", "delete"}, Help: "delete email"},
	{Name: "forward", Defaults: []string{"f"}, Help: "forward"},
	{Name: "reply", Defaults: []string{"r"}, Help: "reply"},
	{Name: "reply_all", Defaults: []string{"a"}, Help: "reply to all"},
	{Name: "report", Defaults: []string{"!"}, Help: "report phishing"},
	{Name: "star", Defaults: []string{"s"}, Help: "star / unstar"},
	{Name: "unread", Defaults: []string{"u"}, Help: "mark as unread"},

	// Link keys
	{Name: "follow_link", Defaults: []string{"l"}, Help: "open highlighted link"},
	{Name: "next_link", Defaults: []string{"tab"}, Help: "highlight next link"},
	{Name: "prev_link", Defaults: []string{"shift+tab"}, Help: "highlight previous link"},
	{Name: "release_link", Defaults: []string{"esc"}, Help: "stop highlighting link"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
