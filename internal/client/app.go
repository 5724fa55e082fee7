package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/models"
)

// App runs one client command per process.
type App struct {
	auth      service.ClientAuthService
	companies service.ClientCompanyService
	ui        UI

	args   []string
	stdout io.Writer
	stderr io.Writer
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, args []string, stdout, stderr io.Writer, logger *logger.Logger) *App {
	return &App{
		auth:      services.AuthService,
		companies: services.CompanyService,
		ui:        ui,
		args:      args,
		stdout:    stdout,
		stderr:    stderr,
		logger:    logger,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	cmd, err := parseCommand(a.args, a.stderr)
	if err != nil {
		return err
	}

	a.logger.Debug().Str("command", cmd.name).Msg("running client command")

	var session models.Session
	if cmd.needsSession() || cmd.name == commandUI {
		session, err = a.auth.Restore(ctx)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrClientNotLoggedIn) && cmd.name == commandUI:
		default:
			return err
		}
	}

	switch cmd.name {
	case commandUI:
		return a.ui.Run(ctx, session)
	case commandExport:
		return a.export(ctx, cmd)
	case commandImport:
		return a.importCSV(ctx, cmd)
	case commandLogin:
		session, err = a.auth.Login(ctx, models.LoginRequest{Username: cmd.username, Password: cmd.password})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Logged in as %s (%s)\n", session.User.Username, session.User.Role)
	case commandRegister:
		session, err = a.auth.Register(ctx, models.RegisterRequest{Username: cmd.username, Password: cmd.password, Role: cmd.role})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Registered and logged in as %s (%s)\n", session.User.Username, session.User.Role)
	case commandLogout:
		if err = a.auth.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, "Logged out")
	}

	return nil
}

func (a *App) export(ctx context.Context, cmd command) (err error) {
	f, err := os.Create(cmd.output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", cmd.output, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", cmd.output, closeErr)
		}
	}()

	n, err := a.companies.Export(ctx, f, cmd.filter)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Exported %d companies to %s\n", n, cmd.output)
	return nil
}

func (a *App) importCSV(ctx context.Context, cmd command) error {
	f, err := os.Open(cmd.input)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", cmd.input, err)
	}
	defer f.Close()

	result, err := a.companies.Import(ctx, f)
	for _, skipped := range result.Skipped {
		fmt.Fprintf(a.stdout, "skipped %v\n", skipped)
	}
	if err != nil {
		return err
	}

	report := result.Report
	fmt.Fprintf(a.stdout, "successCount: %d\n", report.SuccessCount)
	fmt.Fprintf(a.stdout, "errorCount: %d\n", report.ErrorCount)
	for _, e := range report.Errors {
		partial := ""
		if e.Partial {
			partial = " (partially saved)"
		}
		if row, ok := result.Row(e.Index); ok {
			fmt.Fprintf(a.stdout, "  row %d %s: %s%s\n", row, e.Name, e.Message, partial)
		} else {
			fmt.Fprintf(a.stdout, "  entry #%d %s: %s%s\n", e.Index, e.Name, e.Message, partial)
		}
	}

	return nil
}
