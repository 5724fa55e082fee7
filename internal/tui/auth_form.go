// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-company-directory/models"
)

// authFormModel backs both the sign-in and the registration screens. The
// registration form has one extra focus stop after the inputs: the role
// selector, switched with left/right.
type authFormModel struct {
	register bool

	inputs     []textinput.Model
	focus      int
	roles      []models.Role
	roleIdx    int
	submitting bool
}

func newAuthForm(register bool) authFormModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 255
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 72
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return authFormModel{
		register: register,
		inputs:   []textinput.Model{usernameInput, passwordInput},
		roles:    []models.Role{models.RoleViewer, models.RoleEditor},
	}
}

func (m authFormModel) stops() int {
	if m.register {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m authFormModel) roleFocused() bool {
	return m.register && m.focus == len(m.inputs)
}

func (m authFormModel) setFocus(focus int) authFormModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m authFormModel) focusNext() authFormModel {
	return m.setFocus((m.focus + 1) % m.stops())
}

func (m authFormModel) focusPrev() authFormModel {
	return m.setFocus((m.focus - 1 + m.stops()) % m.stops())
}

func (m authFormModel) switchRole(step int) authFormModel {
	m.roleIdx = (m.roleIdx + step + len(m.roles)) % len(m.roles)
	return m
}

func (m authFormModel) username() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m authFormModel) password() string {
	return m.inputs[1].Value()
}

func (m authFormModel) role() models.Role {
	return m.roles[m.roleIdx]
}

func (m authFormModel) loginRequest() models.LoginRequest {
	return models.LoginRequest{Username: m.username(), Password: m.password()}
}

func (m authFormModel) registerRequest() models.RegisterRequest {
	return models.RegisterRequest{Username: m.username(), Password: m.password(), Role: m.role()}
}

// update forwards msg to the focused input.
func (m authFormModel) update(msg tea.Msg) (authFormModel, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m authFormModel) View() string {
	var b strings.Builder
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	title, action := "SIGN IN", "Sign in"
	hotKeys := "esc: back │ tab: next field │ enter: submit"
	if m.register {
		title, action = "CREATE ACCOUNT", "Create account"
		hotKeys = "esc: back │ tab: next field │ ←/→: role │ enter: submit"

		b.WriteString("Role     │ ")
		for i, role := range m.roles {
			label := "( ) " + string(role)
			if i == m.roleIdx {
				label = "(•) " + string(role)
			}
			if i == m.roleIdx && m.roleFocused() {
				label = selectedStyle.Render(label)
			}
			b.WriteString(label)
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[" + action + "...]")
	} else {
		b.WriteString("\n[" + action + "]")
	}

	return renderPage(title, b.String(), hotKeys)
}
