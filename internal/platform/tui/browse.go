package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/playform/playform/internal/catalog"
)

// searchLimit caps full-text search results.
const searchLimit = 25

// browseState is a flat list view over a set of games: search results,
// liked games, a creator profile or the subscription feed.
type browseState struct {
	title       string
	games       []catalog.Game
	cursor      int
	searchInput textinput.Model
	searching   bool
}

// openBrowse switches to the list screen with a fixed set of games.
func (m *SessionModel) openBrowse(title string, games []catalog.Game) {
	m.browse = browseState{title: title, games: games}
	m.scr = screenBrowse
}

// openSearch switches to the list screen in search mode.
func (m *SessionModel) openSearch() {
	input := textinput.New()
	input.Placeholder = "Search games"
	input.CharLimit = 64
	input.Focus()

	m.browse = browseState{
		title:       "Search",
		searchInput: input,
		searching:   true,
	}
	m.scr = screenBrowse
}

// updateBrowse handles keys on the list screen.
func (m SessionModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	br := &m.browse

	if br.searching {
		switch msg.String() {
		case "enter":
			return m.runSearch()
		case "esc":
			m.scr = screenHome
			return m, nil
		}
		var cmd tea.Cmd
		br.searchInput, cmd = br.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.scr = screenHome
		return m, nil
	case key.Matches(msg, m.keymap.Search):
		m.openSearch()
		return m, nil
	case key.Matches(msg, m.keymap.Select):
		if br.cursor < len(br.games) {
			m.openGamePage(br.games[br.cursor].ID)
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if br.cursor > 0 {
			br.cursor--
		}
	case "down", "j":
		if br.cursor < len(br.games)-1 {
			br.cursor++
		}
	}
	return m, nil
}

func (m SessionModel) runSearch() (tea.Model, tea.Cmd) {
	br := &m.browse
	query := br.searchInput.Value()

	games, err := m.store.SearchByText(query, searchLimit)
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}

	br.title = fmt.Sprintf("Results for %q", strings.TrimSpace(query))
	br.games = games
	br.cursor = 0
	br.searching = false
	br.searchInput.Blur()
	return m, nil
}

// viewBrowse renders the list screen.
func (m SessionModel) viewBrowse() string {
	br := m.browse

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(br.title) + "\n")

	if br.searching {
		sb.WriteString(br.searchInput.View() + "\n")
		return sb.String()
	}

	if len(br.games) == 0 {
		sb.WriteString(mutedStyle.Render("Nothing here.") + "\n")
		return sb.String()
	}

	for i, g := range br.games {
		marker := "  "
		if i == br.cursor {
			marker = "> "
		}
		fmt.Fprintf(&sb, "%s♥ %-4d %-28s %s\n",
			marker, g.LikeCount, truncate(g.Title, 28),
			mutedStyle.Render("@"+g.Creator))
	}
	return sb.String()
}
