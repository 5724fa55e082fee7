package models

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// ProfileResponse is returned by the profile endpoint.
type ProfileResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// ErrorResponse is the body of every failed API call. Details carries the
// underlying error and is filled only outside production.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CompanyCreatedResponse is returned after a company was added.
type CompanyCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// CompanyUpdatedResponse is returned after a company was updated.
type CompanyUpdatedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	UpdatedID int64  `json:"updatedId"`
}

// CompanyDeletedResponse is returned after a company was deleted.
type CompanyDeletedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID int64  `json:"deletedId"`
}

// BulkImportResponse wraps the report of a bulk import.
type BulkImportResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Details BulkImportReport `json:"details"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
