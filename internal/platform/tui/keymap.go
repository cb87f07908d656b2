package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/playform/playform/internal/core"
)

// keyHold is how long a terminal key press counts as "held". Terminals
// deliver no key-up events, so the pressed-key set expires entries
// after this window; auto-repeat keeps a held key alive.
const keyHold = 200 * time.Millisecond

// gameKeys are the key names forwarded to running games.
var gameKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"w": true, "a": true, "s": true, "d": true,
	" ": true,
}

// feedGameKey presses a game-relevant key into the key set.
// Returns true if the key was consumed as game input.
func feedGameKey(keys *core.KeySet, msg tea.KeyMsg, now time.Time) bool {
	name := strings.ToLower(msg.String())
	if !gameKeys[name] {
		return false
	}
	keys.PressUntil(name, now.Add(keyHold))
	return true
}

// keyMap defines the non-game bindings shown in the help footer.
type keyMap struct {
	Generate  key.Binding
	Save      key.Binding
	Publish   key.Binding
	Focus     key.Binding
	Select    key.Binding
	Back      key.Binding
	Search    key.Binding
	Like      key.Binding
	Subscribe key.Binding
	Comment   key.Binding
	Profile   key.Binding
	Liked     key.Binding
	Subs      key.Binding
	SignOut   key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Generate, k.Save, k.Publish, k.Search, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Select, k.Back, k.Search},
		{k.Generate, k.Save, k.Publish},
		{k.Like, k.Subscribe, k.Comment, k.Profile},
		{k.Liked, k.Subs, k.SignOut, k.Quit},
	}
}

var defaultKeys = keyMap{
	Generate:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save draft")),
	Publish:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "publish")),
	Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Like:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
	Subscribe: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "subscribe")),
	Comment:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
	Profile:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "creator")),
	Liked:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "liked")),
	Subs:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "subscriptions")),
	SignOut:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "sign out")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}
