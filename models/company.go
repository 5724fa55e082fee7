package models

import "slices"

// CountryContact holds the contact details of one company in one country.
type CountryContact struct {
	ResponsiblePerson string `json:"responsible_person" validate:"max=255"`
	ResponsiblePhone  string `json:"responsible_phone" validate:"max=64"`
	ResponsibleEmail  string `json:"responsible_email" validate:"max=255"`
	CompanyPhone      string `json:"company_phone" validate:"max=64"`
	CompanyEmail      string `json:"company_email" validate:"max=255"`
}

// IsEmpty reports whether none of the contact fields is set.
func (c CountryContact) IsEmpty() bool {
	return c == CountryContact{}
}

// HasPrimaryContact reports whether the responsible person, phone or email
// is set. Bulk imports skip contacts that carry none of them.
func (c CountryContact) HasPrimaryContact() bool {
	return c.ResponsiblePerson != "" || c.ResponsiblePhone != "" || c.ResponsibleEmail != ""
}

// CountryContacts maps a country to the company's contact details there.
type CountryContacts map[Country]CountryContact

// Presence flags a company's operation in each supported country.
// Its fields are flattened into the company JSON object.
type Presence struct {
	InKenya    bool `json:"presence_in_kenya"`
	InUganda   bool `json:"presence_in_uganda"`
	InTanzania bool `json:"presence_in_tanzania"`
	InRwanda   bool `json:"presence_in_rwanda"`
}

// Has reports whether presence in c is flagged.
func (p Presence) Has(c Country) bool {
	switch c {
	case CountryKenya:
		return p.InKenya
	case CountryUganda:
		return p.InUganda
	case CountryTanzania:
		return p.InTanzania
	case CountryRwanda:
		return p.InRwanda
	default:
		return false
	}
}

// Set flags or clears presence in c. Unknown countries are ignored.
func (p *Presence) Set(c Country, present bool) {
	switch c {
	case CountryKenya:
		p.InKenya = present
	case CountryUganda:
		p.InUganda = present
	case CountryTanzania:
		p.InTanzania = present
	case CountryRwanda:
		p.InRwanda = present
	}
}

// Company is an organization listed in the directory together with its
// per-country presence and contacts.
type Company struct {
	ID           int64  `json:"id"`
	CompanyName  string `json:"company_name" validate:"required,max=255"`
	BusinessType string `json:"business_type" validate:"max=255"`
	Industry     string `json:"industry" validate:"max=255"`
	Website      string `json:"website" validate:"max=255"`

	Presence

	CountryContacts CountryContacts `json:"countryContacts" validate:"dive,keys,country,endkeys"`
}

// CountryRow is the stored form of one (company, country) relation: the
// presence marker plus the contact details.
type CountryRow struct {
	Country Country
	Present bool
	Contact CountryContact
}

// CountryRows returns one row per country the company is present in, in
// [Countries] order. Contact details imply presence, so a country with a
// non-empty contact is always included, while an all-empty contact for an
// absent country produces no row and is therefore not kept. Contacts keyed by unknown countries
// follow in key order and are left for the database to reject.
func (c Company) CountryRows() []CountryRow {
	rows := make([]CountryRow, 0, len(Countries))
	for _, country := range Countries {
		contact := c.CountryContacts[country]
		if !c.Presence.Has(country) && contact.IsEmpty() {
			continue
		}
		rows = append(rows, CountryRow{
			Country: country,
			Present: true,
			Contact: contact,
		})
	}

	unknown := make([]Country, 0)
	for country, contact := range c.CountryContacts {
		if !country.Valid() && !contact.IsEmpty() {
			unknown = append(unknown, country)
		}
	}
	slices.Sort(unknown)
	for _, country := range unknown {
		rows = append(rows, CountryRow{
			Country: country,
			Present: true,
			Contact: c.CountryContacts[country],
		})
	}

	return rows
}

// ApplyCountryRow folds a stored country row back into the company.
func (c *Company) ApplyCountryRow(row CountryRow) {
	if c.CountryContacts == nil {
		c.CountryContacts = make(CountryContacts)
	}
	if row.Present {
		c.Presence.Set(row.Country, true)
	}
	if !row.Contact.IsEmpty() {
		c.CountryContacts[row.Country] = row.Contact
	}
}

// CompanyFilter narrows the company list. Zero fields do not filter.
type CompanyFilter struct {
	BusinessType string
	Industry     string
	Country      Country
}

// FilterOptions lists the values the company list can be filtered by.
type FilterOptions struct {
	BusinessTypes []string  `json:"businessTypes"`
	Industries    []string  `json:"industries"`
	Countries     []Country `json:"countries"`
}
