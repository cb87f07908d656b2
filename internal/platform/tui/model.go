package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/playform/playform/internal/catalog"
	"github.com/playform/playform/internal/config"
	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

// screen identifies the active view.
type screen int

const (
	screenHome screen = iota
	screenAuth
	screenGame
	screenBrowse
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	focusStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13"))
)

// SessionModel is the top-level Bubble Tea model: studio home, game
// pages, catalog browsing and the auth prompt. It owns the one game
// runtime and feeds it frames and input.
type SessionModel struct {
	cfg   config.Config
	store *catalog.Store

	keys    *core.KeySet
	pacer   *runtime.ManualPacer
	rt      *runtime.Runtime
	surface *core.Surface

	scr    screen
	user   string // signed-in username, "" when anonymous
	status string
	keymap keyMap
	help   help.Model

	studio studioState
	page   gamePageState
	browse browseState
	auth   authState

	width    int
	height   int
	quitting bool
}

// NewSession creates the top-level model. The signed-in user is
// restored from the store's currentUser key.
func NewSession(store *catalog.Store, cfg config.Config) SessionModel {
	keys := core.NewKeySet()
	pacer := runtime.NewManualPacer()

	m := SessionModel{
		cfg:     cfg,
		store:   store,
		keys:    keys,
		pacer:   pacer,
		rt:      runtime.New(pacer, keys, cfg.Canvas.RandSeed),
		surface: core.NewSurface(cfg.Canvas.Width, cfg.Canvas.Height),
		keymap:  defaultKeys,
		help:    help.New(),
		studio:  newStudioState(),
		auth:    newAuthState(),
	}

	if user, err := store.CurrentUser(); err == nil {
		m.user = user
	}

	m.loadBlank()
	m.refreshHome()
	return m
}

// Init starts the frame pacing loop.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.Canvas.TickRate), m.studio.prompt.Cursor.BlinkCmd())
}

// Update handles messages and routes them to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		now := time.Time(msg)
		m.keys.Prune(now)
		m.pacer.Step(now)
		return m, tickCmd(m.cfg.Canvas.TickRate)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.rt.Stop()
			m.quitting = true
			return m, tea.Quit
		}
		switch m.scr {
		case screenAuth:
			return m.updateAuth(msg)
		case screenHome:
			return m.updateStudio(msg)
		case screenGame:
			return m.updateGamePage(msg)
		case screenBrowse:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

// handleResize fits the drawing surface into the new window and
// reloads the active definition so it picks up the new dimensions.
func (m SessionModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	w := core.Clamp(msg.Width-4, 20, m.cfg.Canvas.Width)
	h := core.Clamp(msg.Height-10, 10, m.cfg.Canvas.Height)
	m.surface.Resize(w, h)

	if def := m.rt.Current(); def != nil {
		m.rt.Load(def, m.surface)
	}
	return m, nil
}

// loadBlank puts the empty studio canvas on screen.
func (m *SessionModel) loadBlank() {
	if def, err := registry.Create("blank"); err == nil {
		m.rt.Load(def, m.surface)
	}
}

// toast sets the one-line status message shown in the footer.
func (m *SessionModel) toast(s string) {
	m.status = s
}

// signedIn reports whether a user is signed in, setting a hint toast
// when not.
func (m *SessionModel) signedIn() bool {
	if m.user == "" {
		m.toast("Sign in to do that.")
		return false
	}
	return true
}

// View renders the active screen with the shared header and footer.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render("▶ Playform")
	if m.user != "" {
		header += mutedStyle.Render("  @" + m.user)
	} else {
		header += mutedStyle.Render("  guest")
	}

	var body string
	switch m.scr {
	case screenAuth:
		body = m.viewAuth()
	case screenHome:
		body = m.viewStudio()
	case screenGame:
		body = m.viewGamePage()
	case screenBrowse:
		body = m.viewBrowse()
	}

	footer := m.help.View(m.keymap)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "\n" + footer
	}

	return header + "\n" + body + "\n" + footer
}

// Run starts the interactive TUI over the local terminal.
func Run(store *catalog.Store, cfg config.Config) error {
	return runProgram(NewSession(store, cfg))
}

// RunGame opens the TUI directly on a published game's play page.
func RunGame(store *catalog.Store, cfg config.Config, gameID string) error {
	m := NewSession(store, cfg)
	m.openGamePage(gameID)
	if m.scr != screenGame {
		return fmt.Errorf("game %s not found", gameID)
	}
	return runProgram(m)
}

// RunTemplate opens the TUI with a template preloaded on the studio
// canvas.
func RunTemplate(store *catalog.Store, cfg config.Config, name string) error {
	def, err := registry.Create(name)
	if err != nil {
		return err
	}
	m := NewSession(store, cfg)
	m.rt.Load(def, m.surface)
	m.setFocus(focusPlay)
	return runProgram(m)
}

func runProgram(m SessionModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
