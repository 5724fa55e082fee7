package tui

import (
	"github.com/MKhiriev/go-company-directory/models"
)

type authDoneMsg struct {
	session models.Session
	err     error
}

type listLoadedMsg struct {
	companies []models.Company
	err       error
}

type filtersLoadedMsg struct {
	options models.FilterOptions
	err     error
}

type companyLoadedMsg struct {
	company models.Company
	err     error
}

type companyDeletedMsg struct {
	id  int64
	err error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
