package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
)

const statusTTL = 2 * time.Second

type appModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	companies service.ClientCompanyService
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	session       models.Session
	currentScreen screen

	welcome  welcomeModel
	login    authFormModel
	register authFormModel
	list     listModel
	detail   detailModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	showBuildInfo bool
}

func newAppModel(
	ctx context.Context,
	auth service.ClientAuthService,
	companies service.ClientCompanyService,
	buildInfo models.AppBuildInfo,
	session models.Session,
) appModel {
	m := appModel{
		ctx:           ctx,
		auth:          auth,
		companies:     companies,
		buildInfo:     buildInfo,
		copyText:      clipboard.WriteAll,
		session:       session,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newAuthForm(false),
		register:      newAuthForm(true),
		list:          newListModel(),
	}
	if !session.IsZero() {
		m.currentScreen = screenList
		m.list.user = session.User
		m.list.loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return m.cmdReload()
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				return m, m.cmdDeleteCompany(m.pendingDelete)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(errorMessage(msg.err))
			return m, nil
		}
		m.session = msg.session
		m.login = newAuthForm(false)
		m.register = newAuthForm(true)
		m.list = newListModel()
		m.list.user = msg.session.User
		m.list.loading = true
		m.currentScreen = screenList
		return m, m.cmdReload()
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.list = m.list.withCompanies(msg.companies)
		return m, nil
	case filtersLoadedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.list.filters = m.list.filters.withOptions(msg.options)
		return m, nil
	case companyLoadedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		if m.currentScreen == screenDetail && m.detail.company.ID == msg.company.ID {
			idx := m.detail.idx
			m.detail = newDetailModel(msg.company).moveCursor(idx)
		} else {
			m.detail = newDetailModel(msg.company)
		}
		m.currentScreen = screenDetail
		return m, nil
	case companyDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.currentScreen = screenList
		m.list.loading = true
		m.list.status = "Company deleted"
		return m, tea.Batch(m.cmdReload(), cmdClearStatus())
	case loggedOutMsg:
		m.toWelcome()
		if msg.err != nil {
			m.showErrorf(errorMessage(msg.err))
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("Copy to clipboard failed: %v", msg.err))
			return m, nil
		}
		m.detail.status = "Copied " + msg.text
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateAuthForm(msg, false)
	case screenRegister:
		return m.updateAuthForm(msg, true)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleError shows err to the user. When the server no longer accepts the
// session the client has already dropped it, so the UI returns to the
// welcome screen as well.
func (m appModel) handleError(err error) (tea.Model, tea.Cmd) {
	if sessionLost(err) {
		m.toWelcome()
	}
	m.showErrorf(errorMessage(err))
	return m, nil
}

func (m *appModel) toWelcome() {
	m.session = models.Session{}
	m.list = newListModel()
	m.detail = detailModel{}
	m.currentScreen = screenWelcome
}

func (m *appModel) askDelete(c models.Company) {
	m.showConfirm = true
	m.confirm = confirmModel{companyName: c.CompanyName}
	m.pendingDelete = c.ID
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAuthForm(msg tea.Msg, register bool) (tea.Model, tea.Cmd) {
	form := m.login
	if register {
		form = m.register
	}

	var cmd tea.Cmd
	keyMsg, ok := msg.(tea.KeyMsg)
	switch {
	case ok && key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenWelcome
		return m, nil
	case ok && key.Matches(keyMsg, keys.tab):
		form = form.focusNext()
	case ok && key.Matches(keyMsg, keys.backtab):
		form = form.focusPrev()
	case ok && form.roleFocused() && key.Matches(keyMsg, keys.left):
		form = form.switchRole(-1)
	case ok && form.roleFocused() && key.Matches(keyMsg, keys.right):
		form = form.switchRole(1)
	case ok && key.Matches(keyMsg, keys.enter):
		if form.submitting {
			return m, nil
		}
		form.submitting = true
		if register {
			cmd = m.cmdRegister(form.registerRequest())
		} else {
			cmd = m.cmdLogin(form.loginRequest())
		}
	default:
		form, cmd = form.update(msg)
	}

	if register {
		m.register = form
	} else {
		m.login = form
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.companies)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if c, ok := m.list.current(); ok {
			return m, m.cmdGetCompany(c.ID)
		}
	case key.Matches(keyMsg, keys.business):
		m.list.filters = m.list.filters.cycleBusiness()
		return m.reloadList()
	case key.Matches(keyMsg, keys.industry):
		m.list.filters = m.list.filters.cycleIndustry()
		return m.reloadList()
	case key.Matches(keyMsg, keys.country):
		m.list.filters = m.list.filters.cycleCountry()
		return m.reloadList()
	case key.Matches(keyMsg, keys.clear):
		m.list.filters = m.list.filters.cleared()
		return m.reloadList()
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, m.cmdReload()
	case key.Matches(keyMsg, keys.delete):
		if c, ok := m.list.current(); ok {
			m.askDelete(c)
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.detail = m.detail.moveCursor(-1)
	case key.Matches(keyMsg, keys.down):
		m.detail = m.detail.moveCursor(1)
	case key.Matches(keyMsg, keys.copy):
		row, ok := m.detail.selected()
		if !ok || row.Contact.CompanyEmail == "" {
			m.detail.status = "No company email to copy"
			return m, cmdClearStatus()
		}
		return m, m.cmdCopyToClipboard(row.Contact.CompanyEmail)
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(m.detail.company)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdGetCompany(m.detail.company.ID)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) reloadList() (tea.Model, tea.Cmd) {
	m.list.loading = true
	m.list.idx = 0
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList(m.list.filters.filter()))
}

func (m appModel) cmdReload() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadFilters(), m.cmdLoadList(m.list.filters.filter()))
}

func (m appModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, req)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Register(ctx, req)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadList(filter models.CompanyFilter) tea.Cmd {
	ctx, companies := m.ctx, m.companies
	return func() tea.Msg {
		list, err := companies.List(ctx, filter)
		return listLoadedMsg{companies: list, err: err}
	}
}

func (m appModel) cmdLoadFilters() tea.Cmd {
	ctx, companies := m.ctx, m.companies
	return func() tea.Msg {
		options, err := companies.FilterOptions(ctx)
		return filtersLoadedMsg{options: options, err: err}
	}
}

func (m appModel) cmdGetCompany(id int64) tea.Cmd {
	ctx, companies := m.ctx, m.companies
	return func() tea.Msg {
		company, err := companies.Get(ctx, id)
		return companyLoadedMsg{company: company, err: err}
	}
}

func (m appModel) cmdDeleteCompany(id int64) tea.Cmd {
	ctx, companies := m.ctx, m.companies
	return func() tea.Msg {
		return companyDeletedMsg{id: id, err: companies.Delete(ctx, id)}
	}
}

func (m appModel) cmdCopyToClipboard(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{text: text, err: copyText(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
