package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/playform/playform/internal/catalog"
)

// authState is the sign in / sign up prompt.
type authState struct {
	username textinput.Model
	password textinput.Model
	signup   bool
	field    int // 0 username, 1 password
}

func newAuthState() authState {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	return authState{username: username, password: password}
}

// updateAuth handles keys on the auth screen.
func (m SessionModel) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	au := &m.auth

	switch msg.String() {
	case "esc":
		// Continue as guest.
		m.scr = screenHome
		return m, nil
	case "tab", "shift+tab":
		au.field = 1 - au.field
		if au.field == 0 {
			au.username.Focus()
			au.password.Blur()
		} else {
			au.username.Blur()
			au.password.Focus()
		}
		return m, nil
	case "ctrl+t":
		au.signup = !au.signup
		return m, nil
	case "enter":
		if au.field == 0 {
			au.field = 1
			au.username.Blur()
			au.password.Focus()
			return m, nil
		}
		return m.submitAuth()
	}

	var cmd tea.Cmd
	if au.field == 0 {
		au.username, cmd = au.username.Update(msg)
	} else {
		au.password, cmd = au.password.Update(msg)
	}
	return m, cmd
}

func (m SessionModel) submitAuth() (tea.Model, tea.Cmd) {
	au := &m.auth

	var (
		user *catalog.User
		err  error
	)
	if au.signup {
		user, err = m.store.CreateUser(au.username.Value(), au.password.Value())
	} else {
		user, err = m.store.Authenticate(au.username.Value(), au.password.Value())
	}
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateUsername):
			m.toast("That username is taken.")
		case errors.Is(err, catalog.ErrInvalidCredentials):
			m.toast("Wrong username or password.")
		case errors.Is(err, catalog.ErrMissingCredentials):
			m.toast("Username and password are required.")
		default:
			m.toast(err.Error())
		}
		return m, nil
	}

	if err := m.store.SetCurrentUser(user.Username); err != nil {
		m.toast(err.Error())
		return m, nil
	}

	m.user = user.Username
	au.password.Reset()
	m.scr = screenHome
	m.refreshHome()
	m.toast("Welcome, @" + user.Username)
	return m, nil
}

// viewAuth renders the sign in / sign up prompt.
func (m SessionModel) viewAuth() string {
	au := m.auth

	mode := "Sign in"
	hint := "ctrl+t to sign up instead"
	if au.signup {
		mode = "Create account"
		hint = "ctrl+t to sign in instead"
	}

	return headerStyle.Render(mode) + "\n\n" +
		au.username.View() + "\n" +
		au.password.View() + "\n\n" +
		mutedStyle.Render(hint+" · esc to continue as guest") + "\n"
}
