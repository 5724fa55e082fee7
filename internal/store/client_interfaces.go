package store

import (
	"context"

	"github.com/MKhiriev/go-company-directory/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the terminal client's login between runs. At most
// one session is stored.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrSessionNotFound] when no one is logged in.
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
