package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/inboxsim/internal/domain"
)

// ApplicationKeys defines key bindings for run-level actions
type ApplicationKeys struct {
	ForceQuit   key.Binding
	Help        key.Binding
	NextSession key.Binding
	PrimaryTask key.Binding
}

// NavigationKeys defines key bindings for moving through the inbox
type NavigationKeys struct {
	Down       key.Binding
	Open       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Up         key.Binding
}

// EmailKeys defines key bindings for acting on the open email
type EmailKeys struct {
	Attachments key.Binding
	Delete      key.Binding
	Forward     key.Binding
	Reply       key.Binding
	ReplyAll    key.Binding
	Report      key.Binding
	Star        key.Binding
	Unread      key.Binding
}

// LinkKeys defines key bindings for the links of the open email
type LinkKeys struct {
	Follow  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Release key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Email       EmailKeys
	Links       LinkKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// customKeys overrides defaults by key name; nil uses the defaults.
func NewKeyMap(customKeys map[string][]string) KeyMap {
	defaults := GetDefaultKeyBindings()
	b := func(name string) key.Binding {
		return buildBinding(name, defaults, customKeys)
	}

	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit:   b("force_quit"),
			Help:        b("help"),
			NextSession: b("next_session"),
			PrimaryTask: b("primary_task"),
		},
		Email: EmailKeys{
			Attachments: b("attachments"),
			Delete:      b("delete"),
			Forward:     b("forward"),
			Reply:       b("reply"),
			ReplyAll:    b("reply_all"),
			Report:      b("report"),
			Star:        b("star"),
			Unread:      b("unread"),
		},
		Links: LinkKeys{
			Follow:  b("follow_link"),
			Next:    b("next_link"),
			Prev:    b("prev_link"),
			Release: b("release_link"),
		},
		Navigation: NavigationKeys{
			Down:       b("down"),
			Open:       b("open"),
			ScrollDown: b("scroll_down"),
			ScrollUp:   b("scroll_up"),
			Up:         b("up"),
		},
	}
}

// ApplyButtons disables the actions a session hides
func (k *KeyMap) ApplyButtons(buttons domain.Buttons) {
	k.Email.Delete.SetEnabled(buttons.Delete)
	k.Email.Report.SetEnabled(buttons.Report)
	k.Email.Star.SetEnabled(buttons.Star)
	k.Email.Unread.SetEnabled(buttons.Unread)
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		k.Navigation.Open,
		k.Email.Reply,
		k.Email.Forward,
		k.Email.Star,
		k.Email.Delete,
		k.Email.Report,
		k.Links.Next,
		k.Application.Help,
	}
	enabled := bindings[:0]
	for _, b := range bindings {
		if b.Enabled() {
			enabled = append(enabled, b)
		}
	}
	return enabled
}

// buildBinding creates a binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys map[string][]string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
