package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// helpText is the short description shown in the help footer.
var helpText = map[core.Action]string{
	core.ActionMoveLeft:  "left",
	core.ActionMoveRight: "right",
	core.ActionRotateCW:  "rotate",
	core.ActionRotateCCW: "rotate ccw",
	core.ActionSoftDrop:  "soft drop",
	core.ActionHardDrop:  "hard drop",
	core.ActionHold:      "hold",
	core.ActionPause:     "pause",
	core.ActionResume:    "resume",
	core.ActionRestart:   "restart",
	core.ActionQuit:      "quit",
}

// KeyMap translates Bubble Tea key messages to game actions.
// It also serves as the help.KeyMap for the footer.
type KeyMap struct {
	bindings map[core.Action]key.Binding
}

// NewKeyMap builds bindings from action -> key names. The name "space"
// matches the space bar.
func NewKeyMap(keys map[core.Action][]string) KeyMap {
	km := KeyMap{bindings: make(map[core.Action]key.Binding, len(keys))}
	for a, names := range keys {
		if !a.Valid() || len(names) == 0 {
			continue
		}
		match := make([]string, 0, len(names)+1)
		for _, n := range names {
			match = append(match, n)
			if n == "space" {
				match = append(match, " ")
			}
		}
		km.bindings[a] = key.NewBinding(
			key.WithKeys(match...),
			key.WithHelp(strings.Join(names, "/"), helpText[a]),
		)
	}
	return km
}

// Binding returns the binding of an action. Unbound actions yield a disabled
// binding.
func (k KeyMap) Binding(a core.Action) key.Binding {
	b, ok := k.bindings[a]
	if !ok {
		return key.NewBinding(key.WithDisabled())
	}
	return b
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, a := range core.Actions() {
		b, ok := k.bindings[a]
		if ok && key.Matches(msg, b) {
			return a, a == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.enabled(
		core.ActionMoveLeft, core.ActionMoveRight, core.ActionRotateCW,
		core.ActionHardDrop, core.ActionHold, core.ActionPause, core.ActionQuit,
	)
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.enabled(core.ActionMoveLeft, core.ActionMoveRight, core.ActionSoftDrop, core.ActionHardDrop),
		k.enabled(core.ActionRotateCW, core.ActionRotateCCW, core.ActionHold),
		k.enabled(core.ActionPause, core.ActionResume, core.ActionRestart, core.ActionQuit),
	}
}

func (k KeyMap) enabled(actions ...core.Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := k.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}
