// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Country is the closed set of countries a company can operate in.
type Country string

const (
	CountryKenya    Country = "kenya"
	CountryUganda   Country = "uganda"
	CountryTanzania Country = "tanzania"
	CountryRwanda   Country = "rwanda"
)

// Countries lists every supported country in display order.
var Countries = []Country{
	CountryKenya,
	CountryUganda,
	CountryTanzania,
	CountryRwanda,
}

// Valid reports whether c is one of [Countries].
func (c Country) Valid() bool {
	switch c {
	case CountryKenya, CountryUganda, CountryTanzania, CountryRwanda:
		return true
	default:
		return false
	}
}

// Title returns the human-readable country name, e.g. "Kenya".
func (c Country) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// ParseCountry converts a case-insensitive country name into a [Country].
func ParseCountry(s string) (Country, bool) {
	c := Country(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}
