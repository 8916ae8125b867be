package bootstrap

import (
	"context"
	"testing"

	"github.com/Domenick1991/seatledger/config"
	"github.com/Domenick1991/seatledger/internal/domain"
	"github.com/Domenick1991/seatledger/internal/repository"
	"github.com/Domenick1991/seatledger/internal/service/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_SeedsAndWalksSession(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Flights: []config.FlightConfig{
			{Number: "SU-1492", TotalSeats: 4},
			{Number: "SU-035", TotalSeats: 87},
		},
	}
	service := ledger.NewLedgerService(repository.NewFlightRepository())

	err := Run(ctx, cfg, service, zap.NewNop())

	require.NoError(t, err)

	snapshots, err := service.ListFlights(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	// The session books alice (2) and bob (1), provokes an overbooking and a
	// cancellation for an unknown passenger, then cancels alice's booking.
	first := snapshots[0]
	assert.Equal(t, "SU-1492", first.Number)
	assert.Equal(t, 3, first.RemainingSeats)
	assert.Equal(t, []domain.Booking{{Passenger: "bob@example.com", Seats: 1}}, first.Bookings)

	second := snapshots[1]
	assert.Equal(t, "SU-035", second.Number)
	assert.Equal(t, 87, second.RemainingSeats)
	assert.Empty(t, second.Bookings)
}

func TestRun_NoFlightsConfigured(t *testing.T) {
	service := ledger.NewLedgerService(repository.NewFlightRepository())

	err := Run(context.Background(), &config.Config{}, service, zap.NewNop())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no flights configured")
}

func TestRun_InvalidFlightConfig(t *testing.T) {
	cfg := &config.Config{
		Flights: []config.FlightConfig{{Number: "SU-1492", TotalSeats: 0}},
	}
	service := ledger.NewLedgerService(repository.NewFlightRepository())

	err := Run(context.Background(), cfg, service, zap.NewNop())

	assert.ErrorIs(t, err, domain.ErrInvalidTotalSeats)
	assert.Contains(t, err.Error(), "seed flight SU-1492")
}
