package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-company-directory/models"
)

// detailModel shows one company. The cursor moves over the countries the
// company is present in; copy acts on the selected country.
type detailModel struct {
	company models.Company
	idx     int
	status  string
}

func newDetailModel(company models.Company) detailModel {
	return detailModel{company: company}
}

func (m detailModel) rows() []models.CountryRow {
	return m.company.CountryRows()
}

func (m detailModel) moveCursor(step int) detailModel {
	n := len(m.rows())
	if n == 0 {
		return m
	}
	m.idx = min(max(m.idx+step, 0), n-1)
	return m
}

func (m detailModel) selected() (models.CountryRow, bool) {
	rows := m.rows()
	if m.idx < 0 || m.idx >= len(rows) {
		return models.CountryRow{}, false
	}
	return rows[m.idx], true
}

func (m detailModel) View() string {
	c := m.company

	var b strings.Builder
	fmt.Fprintf(&b, "Business type: %s\n", valueOrDash(c.BusinessType))
	fmt.Fprintf(&b, "Industry:      %s\n", valueOrDash(c.Industry))
	fmt.Fprintf(&b, "Website:       %s\n", valueOrDash(c.Website))

	presence := make([]string, 0, len(models.Countries))
	for _, country := range models.Countries {
		mark := "no"
		if c.Presence.Has(country) {
			mark = "yes"
		}
		presence = append(presence, country.Title()+": "+mark)
	}
	fmt.Fprintf(&b, "Presence:      %s\n", strings.Join(presence, "  "))

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString("\nNo country contacts")
	}
	for i, row := range rows {
		header := cursor(i == m.idx) + row.Country.Title()
		if i == m.idx {
			header = selectedStyle.Render(header)
		}
		b.WriteString("\n" + header + "\n")
		fmt.Fprintf(&b, "    Responsible person: %s\n", valueOrDash(row.Contact.ResponsiblePerson))
		fmt.Fprintf(&b, "    Responsible phone:  %s\n", valueOrDash(row.Contact.ResponsiblePhone))
		fmt.Fprintf(&b, "    Responsible email:  %s\n", valueOrDash(row.Contact.ResponsibleEmail))
		fmt.Fprintf(&b, "    Company phone:      %s\n", valueOrDash(row.Contact.CompanyPhone))
		fmt.Fprintf(&b, "    Company email:      %s\n", valueOrDash(row.Contact.CompanyEmail))
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	return renderPage(strings.ToUpper(c.CompanyName),
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: country │ c: copy company email │ d: delete │ r: refresh │ esc: back │ l: logout")
}
