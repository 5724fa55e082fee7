package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-company-directory/internal/mock"
)

func TestHealthService_Check(t *testing.T) {
	pinger := mock.NewMockPinger(gomock.NewController(t))
	svc := NewHealthService(pinger)
	ctx := context.Background()

	pingErr := errors.New("connection refused")
	gomock.InOrder(
		pinger.EXPECT().PingContext(ctx).Return(nil),
		pinger.EXPECT().PingContext(ctx).Return(pingErr),
	)

	require.NoError(t, svc.Check(ctx))

	err := svc.Check(ctx)
	require.ErrorIs(t, err, ErrDatabaseUnavailable)
	require.ErrorIs(t, err, pingErr)
}
