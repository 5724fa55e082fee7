package models

// BulkImportError describes one entry of a bulk import that was not stored
// (or, when Partial is set, stored without its contacts).
type BulkImportError struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Partial bool   `json:"partial,omitempty"`
}

// BulkImportReport aggregates the outcome of a bulk import.
type BulkImportReport struct {
	SuccessCount int               `json:"successCount"`
	ErrorCount   int               `json:"errorCount"`
	Errors       []BulkImportError `json:"errors"`
}

// AddError records a failed entry and keeps ErrorCount in sync.
func (r *BulkImportReport) AddError(e BulkImportError) {
	r.Errors = append(r.Errors, e)
	r.ErrorCount = len(r.Errors)
}
