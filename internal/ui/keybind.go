package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys (tea.KeyMsg.String() form: "q", "tab",
// "ctrl+c") to commands. A binding may be limited to some focused controls
// so plain letters stay available to the search box.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	focusFilter  map[string][]FocusID // nil/empty = applies everywhere
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		focusFilter:  make(map[string][]FocusID),
	}
}

// Bind registers a key to a command for every focus.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd, desc string) {
	r.BindForFocus(k, cmd, desc, nil)
}

// BindForFocus registers a key that only fires while one of focuses has focus.
// If focuses is nil or empty, the binding applies everywhere.
func (r *KeybindRegistry) BindForFocus(k string, cmd tea.Cmd, desc string, focuses []FocusID) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	} else {
		delete(r.descriptions, k)
	}
	if len(focuses) > 0 {
		r.focusFilter[k] = focuses
	} else {
		delete(r.focusFilter, k)
	}
}

// Lookup returns the command bound to k for the given focus, or nil.
func (r *KeybindRegistry) Lookup(k string, focus FocusID) tea.Cmd {
	cmd, ok := r.bindings[k]
	if !ok || !r.appliesTo(k, focus) {
		return nil
	}
	return cmd
}

// Handle looks msg up for focus. Returns (consumed, cmd); consumed keys
// must not be passed on to the views.
func (r *KeybindRegistry) Handle(msg tea.KeyMsg, focus FocusID) (bool, tea.Cmd) {
	if cmd := r.Lookup(msg.String(), focus); cmd != nil {
		return true, cmd
	}
	return false, nil
}

// Hints returns the described bindings active for focus, keyed by key.
func (r *KeybindRegistry) Hints(focus FocusID) map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil || !r.appliesTo(k, focus) {
			continue
		}
		if d, ok := r.descriptions[k]; ok {
			out[k] = d
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(k string, focus FocusID) bool {
	focuses, ok := r.focusFilter[k]
	if !ok {
		return true
	}
	for _, f := range focuses {
		if f == focus {
			return true
		}
	}
	return false
}

// KeyMap implements help.KeyMap over the registry for one focus, followed by
// the control-local keys of the focused control.
type KeyMap struct {
	registry *KeybindRegistry
	focus    FocusID
}

var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap creates a KeyMap for the given registry and focus.
func NewKeyMap(registry *KeybindRegistry, focus FocusID) *KeyMap {
	return &KeyMap{registry: registry, focus: focus}
}

// ShortHelp returns the registry hints sorted by key, then local keys.
func (km *KeyMap) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if km.registry != nil {
		hints := km.registry.Hints(km.focus)
		keys := make([]string, 0, len(hints))
		for k := range hints {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
		}
	}
	return append(bindings, localBindings(km.focus)...)
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// localBindings describes keys handled by the focused control itself.
func localBindings(focus FocusID) []key.Binding {
	switch focus {
	case FocusContinent:
		return []key.Binding{
			key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
			key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		}
	case FocusList:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑↓/jk", "move")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		}
	}
	return nil
}
