package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-company-directory/models"
)

type listModel struct {
	companies []models.Company
	idx       int
	loading   bool
	spinner   spinner.Model
	filters   filterState
	status    string
	user      models.User
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

func (m listModel) current() (models.Company, bool) {
	if m.idx < 0 || m.idx >= len(m.companies) {
		return models.Company{}, false
	}
	return m.companies[m.idx], true
}

func (m listModel) withCompanies(companies []models.Company) listModel {
	m.companies = companies
	if m.idx >= len(m.companies) {
		m.idx = len(m.companies) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

// presenceMarks renders the countries a company operates in as their
// initials, e.g. "K U - R".
func presenceMarks(c models.Company) string {
	marks := make([]string, 0, len(models.Countries))
	for _, country := range models.Countries {
		if c.Presence.Has(country) {
			marks = append(marks, strings.ToUpper(string(country[:1])))
		} else {
			marks = append(marks, "-")
		}
	}
	return strings.Join(marks, " ")
}

func (m listModel) View() string {
	var b strings.Builder
	if m.user.Username != "" {
		fmt.Fprintf(&b, "Signed in as %s (%s)\n", m.user.Username, m.user.Role)
	}
	b.WriteString(m.filters.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...")
	case len(m.companies) == 0 && m.filters.active():
		b.WriteString("No companies match the filters")
	case len(m.companies) == 0:
		b.WriteString("No companies yet")
	default:
		fmt.Fprintf(&b, "  %-30s %-18s %-18s %s\n", "Company", "Business type", "Industry", "K U T R")
		for i, c := range m.companies {
			line := fmt.Sprintf("%s%-30s %-18s %-18s %s",
				cursor(i == m.idx),
				fitText(c.CompanyName, 30),
				fitText(valueOrDash(c.BusinessType), 18),
				fitText(valueOrDash(c.Industry), 18),
				presenceMarks(c))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	return renderPage("COMPANIES",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ b/i/o: filter business/industry/country │ x: clear filters │ r: refresh │ d: delete │ l: logout │ q: quit")
}
