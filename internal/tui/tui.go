// Package tui is the interactive terminal front end of the company
// directory: sign in, browse and filter companies, inspect contacts and
// delete entries.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/models"
)

type TUI struct {
	auth      service.ClientAuthService
	companies service.ClientCompanyService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		auth:      services.AuthService,
		companies: services.CompanyService,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits. A zero session opens the welcome screen,
// otherwise the company list is shown right away.
func (t *TUI) Run(ctx context.Context, session models.Session) error {
	model := newAppModel(ctx, t.auth, t.companies, t.buildInfo, session)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if result, ok := finalModel.(appModel); ok && !result.session.IsZero() {
		t.logger.Debug().Str("username", result.session.User.Username).Msg("terminal ui closed")
	}
	return nil
}
