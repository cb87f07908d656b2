package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/playform/playform/internal/catalog"
	"github.com/playform/playform/internal/registry"
)

// gamePageState is the play page of one published game: the running
// game plus its social rail.
type gamePageState struct {
	game         catalog.Game
	comments     []catalog.Comment
	commentInput textinput.Model
	commenting   bool
}

// openGamePage loads a game by id, starts its definition and switches
// to the game screen.
func (m *SessionModel) openGamePage(gameID string) {
	g, err := m.store.GameByID(gameID)
	if err != nil {
		m.toast(err.Error())
		return
	}

	def, err := registry.Create(g.Definition)
	if err != nil {
		m.toast(err.Error())
		return
	}

	comments, err := m.store.CommentsFor(gameID)
	if err != nil {
		m.toast(err.Error())
		return
	}

	input := textinput.New()
	input.Placeholder = "Say something nice"
	input.CharLimit = 200

	m.page = gamePageState{
		game:         *g,
		comments:     comments,
		commentInput: input,
	}
	m.rt.Load(def, m.surface)
	m.scr = screenGame
}

// closeGamePage returns to the home screen and puts the blank canvas
// back on.
func (m *SessionModel) closeGamePage() {
	m.loadBlank()
	m.scr = screenHome
	m.refreshHome()
}

// updateGamePage handles keys on a game's play page.
func (m SessionModel) updateGamePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pg := &m.page

	if pg.commenting {
		switch msg.String() {
		case "enter":
			return m.submitComment()
		case "esc":
			pg.commenting = false
			pg.commentInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		pg.commentInput, cmd = pg.commentInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.closeGamePage()
		return m, nil
	case key.Matches(msg, m.keymap.Like):
		return m.toggleLike()
	case key.Matches(msg, m.keymap.Subscribe):
		return m.toggleSubscription()
	case key.Matches(msg, m.keymap.Comment):
		if !m.signedIn() {
			return m, nil
		}
		pg.commenting = true
		pg.commentInput.Focus()
		return m, pg.commentInput.Cursor.BlinkCmd()
	case key.Matches(msg, m.keymap.Profile):
		return m.openCreatorProfile()
	}

	feedGameKey(m.keys, msg, time.Now())
	return m, nil
}

func (m SessionModel) toggleLike() (tea.Model, tea.Cmd) {
	if !m.signedIn() {
		return m, nil
	}
	count, err := m.store.ToggleLike(m.user, m.page.game.ID)
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}
	m.page.game.LikeCount = count
	return m, nil
}

func (m SessionModel) toggleSubscription() (tea.Model, tea.Cmd) {
	if !m.signedIn() {
		return m, nil
	}
	on, err := m.store.ToggleSubscription(m.user, m.page.game.Creator)
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}
	if on {
		m.toast("Subscribed to @" + m.page.game.Creator)
	} else {
		m.toast("Unsubscribed from @" + m.page.game.Creator)
	}
	return m, nil
}

func (m SessionModel) submitComment() (tea.Model, tea.Cmd) {
	pg := &m.page
	_, err := m.store.AppendComment(pg.game.ID, m.user, pg.commentInput.Value())
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}

	comments, err := m.store.CommentsFor(pg.game.ID)
	if err == nil {
		pg.comments = comments
	}
	pg.commentInput.Reset()
	pg.commenting = false
	pg.commentInput.Blur()
	return m, nil
}

func (m SessionModel) openCreatorProfile() (tea.Model, tea.Cmd) {
	creator := m.page.game.Creator
	games, err := m.store.GamesByCreator(creator)
	if err != nil {
		m.toast(err.Error())
		return m, nil
	}
	m.closeGamePage()
	m.openBrowse("Games by @"+creator, games)
	return m, nil
}

// viewGamePage renders the running game next to its social rail.
func (m SessionModel) viewGamePage() string {
	pg := m.page

	canvas := focusStyle.Render(RenderSurface(m.surface))

	var rail strings.Builder
	rail.WriteString(headerStyle.Render(pg.game.Title) + "\n")
	rail.WriteString(mutedStyle.Render("by @"+pg.game.Creator) + "\n")
	if pg.game.Description != "" {
		rail.WriteString(pg.game.Description + "\n")
	}
	fmt.Fprintf(&rail, "♥ %d\n\n", pg.game.LikeCount)

	rail.WriteString(headerStyle.Render("Comments") + "\n")
	if len(pg.comments) == 0 {
		rail.WriteString(mutedStyle.Render("No comments yet.") + "\n")
	}
	for i, c := range pg.comments {
		if i >= 8 {
			fmt.Fprintf(&rail, "%s\n", mutedStyle.Render(fmt.Sprintf("... and %d more", len(pg.comments)-i)))
			break
		}
		fmt.Fprintf(&rail, "%s %s\n", mutedStyle.Render("@"+c.Author), c.Text)
	}
	if pg.commenting {
		rail.WriteString("\n" + pg.commentInput.View() + "\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, "  ", rail.String())
}
