package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/playform/playform/internal/catalog"
	"github.com/playform/playform/internal/generate"
	"github.com/playform/playform/internal/social"
	"github.com/playform/playform/internal/thumb"
)

// studioFocus identifies which part of the home screen receives keys.
type studioFocus int

const (
	focusPrompt studioFocus = iota
	focusTitle
	focusDesc
	focusPlay // keys feed the preview game
	focusList
)

// gridItem is one row of the home-page game lists.
type gridItem struct {
	header string // section header rendered above this row, if any
	game   catalog.Game
}

// studioState holds the home screen: the prompt-to-game studio plus
// the suggested and trending grids.
type studioState struct {
	prompt textarea.Model
	title  textinput.Model
	desc   textarea.Model
	focus  studioFocus
	items  []gridItem
	cursor int
}

func newStudioState() studioState {
	prompt := textarea.New()
	prompt.Placeholder = "Play anything... 'a cozy snake game'; 'a space shooter'."
	prompt.SetHeight(3)
	prompt.Focus()

	title := textinput.New()
	title.Placeholder = "Untitled Game"
	title.CharLimit = 64

	desc := textarea.New()
	desc.Placeholder = "What have you created?..."
	desc.SetHeight(3)

	return studioState{
		prompt: prompt,
		title:  title,
		desc:   desc,
		focus:  focusPrompt,
	}
}

// refreshHome rebuilds the suggested and trending grids from the
// catalog.
func (m *SessionModel) refreshHome() {
	published, err := m.store.ListPublished()
	if err != nil {
		m.toast(err.Error())
		return
	}

	var items []gridItem

	if m.user != "" {
		user, _ := m.store.UserByName(m.user)
		suggested := social.Limit(social.Suggested(user, published), 8)
		for i, g := range suggested {
			item := gridItem{game: g}
			if i == 0 {
				item.header = "Suggested for you"
			}
			items = append(items, item)
		}
	}

	header := "Trending games"
	if m.user != "" {
		header = "Trending now"
	}
	for i, g := range social.Trending(published, 8) {
		item := gridItem{game: g}
		if i == 0 {
			item.header = header
		}
		items = append(items, item)
	}

	m.studio.items = items
	if m.studio.cursor >= len(items) {
		m.studio.cursor = 0
	}
}

// updateStudio handles keys on the home screen.
func (m SessionModel) updateStudio(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := &m.studio

	// Studio actions work regardless of focus.
	switch {
	case key.Matches(msg, m.keymap.Generate):
		m.generatePreview()
		return m, nil
	case key.Matches(msg, m.keymap.Save):
		return m.saveGame(false)
	case key.Matches(msg, m.keymap.Publish):
		return m.saveGame(true)
	case key.Matches(msg, m.keymap.SignOut):
		return m.toggleSession()
	}

	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	case "esc":
		m.setFocus(focusPlay)
		return m, nil
	}

	if st.focus == focusPrompt || st.focus == focusTitle || st.focus == focusDesc {
		return m.updateStudioInput(msg)
	}

	// Play or list focus: plain keys.
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.rt.Stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Search):
		m.openSearch()
		return m, nil
	case key.Matches(msg, m.keymap.Liked):
		return m.openLiked()
	case key.Matches(msg, m.keymap.Subs):
		return m.openSubs()
	}

	if st.focus == focusList {
		switch msg.String() {
		case "up", "k":
			if st.cursor > 0 {
				st.cursor--
			}
			return m, nil
		case "down", "j":
			if st.cursor < len(st.items)-1 {
				st.cursor++
			}
			return m, nil
		case "enter":
			if st.cursor < len(st.items) {
				m.openGamePage(st.items[st.cursor].game.ID)
			}
			return m, nil
		}
	}

	if st.focus == focusPlay {
		feedGameKey(m.keys, msg, time.Now())
	}
	return m, nil
}

// updateStudioInput forwards a key to the focused text component.
func (m SessionModel) updateStudioInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.studio.focus {
	case focusPrompt:
		m.studio.prompt, cmd = m.studio.prompt.Update(msg)
	case focusTitle:
		m.studio.title, cmd = m.studio.title.Update(msg)
	case focusDesc:
		m.studio.desc, cmd = m.studio.desc.Update(msg)
	}
	return m, cmd
}

// cycleFocus moves focus between studio fields, preview and grids.
func (m *SessionModel) cycleFocus(dir int) {
	next := (int(m.studio.focus) + dir + 5) % 5
	m.setFocus(studioFocus(next))
}

func (m *SessionModel) setFocus(f studioFocus) {
	st := &m.studio
	st.focus = f
	st.prompt.Blur()
	st.title.Blur()
	st.desc.Blur()
	switch f {
	case focusPrompt:
		st.prompt.Focus()
	case focusTitle:
		st.title.Focus()
	case focusDesc:
		st.desc.Focus()
	}
}

// generatePreview runs the prompt through the template selector and
// loads the result into the studio canvas.
func (m *SessionModel) generatePreview() {
	def := generate.Definition(m.studio.prompt.Value())
	m.rt.Load(def, m.surface)
	m.setFocus(focusPlay)
	m.toast(fmt.Sprintf("Generated %s (simulated LLM)", def.Title()))
}

// saveGame persists the current studio game as a draft or published
// record, using a still frame of the surface as the thumbnail.
func (m SessionModel) saveGame(publish bool) (tea.Model, tea.Cmd) {
	if !m.signedIn() {
		return m, nil
	}

	name := "blank"
	if def := m.rt.Current(); def != nil {
		name = def.Name()
	}

	id, err := m.store.SaveGame(catalog.SaveGameParams{
		Title:       m.studio.title.Value(),
		Description: m.studio.desc.Value(),
		Creator:     m.user,
		Definition:  name,
		Thumbnail:   thumb.Capture(m.surface),
		Publish:     publish,
	})
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}

	m.refreshHome()
	if publish {
		m.toast("Published!")
		m.openGamePage(id)
	} else {
		m.toast("Draft saved.")
	}
	return m, nil
}

// toggleSession signs out, or opens the auth prompt when anonymous.
func (m SessionModel) toggleSession() (tea.Model, tea.Cmd) {
	if m.user == "" {
		m.scr = screenAuth
		return m, nil
	}
	if err := m.store.ClearCurrentUser(); err != nil {
		m.toast(err.Error())
		return m, nil
	}
	m.user = ""
	m.refreshHome()
	m.toast("Signed out.")
	return m, nil
}

func (m SessionModel) openLiked() (tea.Model, tea.Cmd) {
	if !m.signedIn() {
		return m, nil
	}
	games, err := m.store.LikedGames(m.user)
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}
	m.openBrowse("Liked games", games)
	return m, nil
}

func (m SessionModel) openSubs() (tea.Model, tea.Cmd) {
	if !m.signedIn() {
		return m, nil
	}
	games, err := m.store.SubscriptionFeed(m.user)
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}
	m.openBrowse("From creators you follow", games)
	return m, nil
}

// viewStudio renders the home screen.
func (m SessionModel) viewStudio() string {
	st := m.studio

	canvas := frameStyle.Render(RenderSurface(m.surface))
	if st.focus == focusPlay {
		canvas = focusStyle.Render(RenderSurface(m.surface))
	}

	field := func(label string, body string, focused bool) string {
		style := frameStyle
		if focused {
			style = focusStyle
		}
		return mutedStyle.Render(label) + "\n" + style.Render(body)
	}

	meta := lipgloss.JoinVertical(lipgloss.Left,
		field("Prompt", st.prompt.View(), st.focus == focusPrompt),
		field("Title", st.title.View(), st.focus == focusTitle),
		field("Description", st.desc.View(), st.focus == focusDesc),
	)

	top := lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", meta)

	var grid strings.Builder
	for i, item := range st.items {
		if item.header != "" {
			grid.WriteString(headerStyle.Render(item.header) + "\n")
		}
		marker := "  "
		if st.focus == focusList && i == st.cursor {
			marker = "> "
		}
		fmt.Fprintf(&grid, "%s♥ %-4d %-28s %s\n",
			marker, item.game.LikeCount, truncate(item.game.Title, 28),
			mutedStyle.Render("@"+item.game.Creator))
	}
	if len(st.items) == 0 {
		grid.WriteString(mutedStyle.Render("Nothing to see here yet.") + "\n")
	}

	return top + "\n" + grid.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
