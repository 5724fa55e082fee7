package client

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-company-directory/models"
)

const (
	commandUI       = "ui"
	commandExport   = "export"
	commandImport   = "import"
	commandLogin    = "login"
	commandRegister = "register"
	commandLogout   = "logout"
)

// command is a parsed command line.
type command struct {
	name string

	output string
	input  string
	filter models.CompanyFilter

	username string
	password string
	role     models.Role
}

// needsSession reports whether the command talks to authenticated
// endpoints and therefore needs the saved session restored first.
func (c command) needsSession() bool {
	return c.name == commandExport || c.name == commandImport
}

// parseCommand turns os.Args[1:] into a command. Usage errors are written
// to usage.
func parseCommand(args []string, usage io.Writer) (command, error) {
	if len(args) == 0 {
		return command{name: commandUI}, nil
	}

	cmd := command{name: args[0]}
	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(usage)

	var country, role string
	required := map[string]*string{}

	switch cmd.name {
	case commandUI, commandLogout:
	case commandExport:
		fs.StringVar(&cmd.output, "o", "", "Output CSV file")
		fs.StringVar(&cmd.filter.BusinessType, "business-type", "", "Only companies of this business type")
		fs.StringVar(&cmd.filter.Industry, "industry", "", "Only companies of this industry")
		fs.StringVar(&country, "country", "", "Only companies present in this country")
		required["o"] = &cmd.output
	case commandImport:
		fs.StringVar(&cmd.input, "i", "", "Input CSV file")
		required["i"] = &cmd.input
	case commandLogin:
		fs.StringVar(&cmd.username, "u", "", "Username")
		fs.StringVar(&cmd.password, "p", "", "Password")
		required["u"] = &cmd.username
		required["p"] = &cmd.password
	case commandRegister:
		fs.StringVar(&cmd.username, "u", "", "Username")
		fs.StringVar(&cmd.password, "p", "", "Password")
		fs.StringVar(&role, "role", "", "Role: viewer or editor")
		required["u"] = &cmd.username
		required["p"] = &cmd.password
		required["role"] = &role
	default:
		return command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.name)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return command{}, fmt.Errorf("error parsing %s flags: %w", cmd.name, err)
	}

	for _, name := range []string{"o", "i", "u", "p", "role"} {
		if v, ok := required[name]; ok && strings.TrimSpace(*v) == "" {
			return command{}, fmt.Errorf("%w: -%s", ErrMissingArgument, name)
		}
	}

	if country != "" {
		c, ok := models.ParseCountry(country)
		if !ok {
			return command{}, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
		}
		cmd.filter.Country = c
	}
	cmd.role = models.Role(strings.ToLower(strings.TrimSpace(role)))

	return cmd, nil
}
