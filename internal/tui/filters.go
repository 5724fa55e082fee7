package tui

import (
	"fmt"

	"github.com/MKhiriev/go-company-directory/models"
)

// filterState tracks which filter value is selected per dimension. Index 0
// means "all"; index i picks the (i-1)th option.
type filterState struct {
	options  models.FilterOptions
	business int
	industry int
	country  int
}

func cycle(idx, options int) int {
	return (idx + 1) % (options + 1)
}

func (f filterState) cycleBusiness() filterState {
	f.business = cycle(f.business, len(f.options.BusinessTypes))
	return f
}

func (f filterState) cycleIndustry() filterState {
	f.industry = cycle(f.industry, len(f.options.Industries))
	return f
}

func (f filterState) cycleCountry() filterState {
	f.country = cycle(f.country, len(f.options.Countries))
	return f
}

func (f filterState) cleared() filterState {
	return filterState{options: f.options}
}

func (f filterState) active() bool {
	return f.business != 0 || f.industry != 0 || f.country != 0
}

// withOptions swaps in freshly loaded options and keeps every selection whose
// value is still offered.
func (f filterState) withOptions(options models.FilterOptions) filterState {
	current := f.filter()
	return filterState{
		options:  options,
		business: indexOf(options.BusinessTypes, current.BusinessType),
		industry: indexOf(options.Industries, current.Industry),
		country:  indexOf(options.Countries, current.Country),
	}
}

func (f filterState) filter() models.CompanyFilter {
	var filter models.CompanyFilter
	if f.business > 0 && f.business <= len(f.options.BusinessTypes) {
		filter.BusinessType = f.options.BusinessTypes[f.business-1]
	}
	if f.industry > 0 && f.industry <= len(f.options.Industries) {
		filter.Industry = f.options.Industries[f.industry-1]
	}
	if f.country > 0 && f.country <= len(f.options.Countries) {
		filter.Country = f.options.Countries[f.country-1]
	}
	return filter
}

func (f filterState) View() string {
	filter := f.filter()
	return fmt.Sprintf("Business type: %s │ Industry: %s │ Country: %s",
		orAll(filter.BusinessType), orAll(filter.Industry), orAll(filter.Country.Title()))
}

func indexOf[T comparable](values []T, v T) int {
	var zero T
	if v == zero {
		return 0
	}
	for i, value := range values {
		if value == v {
			return i + 1
		}
	}
	return 0
}

func orAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}
