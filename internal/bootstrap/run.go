package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/seatledger/config"
	"github.com/Domenick1991/seatledger/internal/domain"
	"github.com/Domenick1991/seatledger/internal/service/ledger"
	"go.uber.org/zap"
)

// Run seeds the ledger with the configured flights, walks one demonstration
// booking session against the first of them and logs the final state of
// every flight. It returns once the session is done; rejected bookings and
// cancellations are expected outcomes of the session, not failures.
func Run(ctx context.Context, cfg *config.Config, svc ledger.LedgerUseCase, logger *zap.Logger) error {
	if len(cfg.Flights) == 0 {
		return errors.New("no flights configured")
	}

	seeded := make([]domain.Snapshot, 0, len(cfg.Flights))
	for _, fc := range cfg.Flights {
		snap, err := svc.CreateFlight(ctx, ledger.CreateFlightInput{Number: fc.Number, TotalSeats: fc.TotalSeats})
		if err != nil {
			return fmt.Errorf("seed flight %s: %w", fc.Number, err)
		}
		seeded = append(seeded, snap)
	}
	logger.Info("flights seeded", zap.Int("count", len(seeded)))

	if err := runSession(ctx, svc, seeded[0].ID); err != nil {
		return fmt.Errorf("booking session: %w", err)
	}

	snapshots, err := svc.ListFlights(ctx)
	if err != nil {
		return err
	}
	for _, snap := range snapshots {
		logger.Info("final flight state",
			zap.String("flight_id", snap.ID),
			zap.String("number", snap.Number),
			zap.Int("total_seats", snap.TotalSeats),
			zap.Int("remaining_seats", snap.RemainingSeats),
			zap.Int("bookings", len(snap.Bookings)),
		)
	}
	return nil
}

// runSession exercises the ledger end to end: two bookings, an overbooking
// attempt sized to always exceed the remaining seats, a cancellation for a
// passenger without bookings and a matching cancellation.
func runSession(ctx context.Context, svc ledger.LedgerUseCase, flightID string) error {
	book := func(passenger string, seats int) error {
		return svc.BookSeats(ctx, ledger.BookSeatsInput{FlightID: flightID, Passenger: passenger, Seats: seats})
	}
	cancel := func(passenger string, seats int) error {
		return svc.CancelSeats(ctx, ledger.CancelSeatsInput{FlightID: flightID, Passenger: passenger, Seats: seats})
	}

	if err := sessionErr(book("alice@example.com", 2)); err != nil {
		return err
	}
	if err := sessionErr(book("bob@example.com", 1)); err != nil {
		return err
	}

	remaining, err := svc.RemainingSeats(ctx, flightID)
	if err != nil {
		return err
	}
	if err := sessionErr(book("walkup@example.com", remaining+1)); err != nil {
		return err
	}

	if err := sessionErr(cancel("ghost@example.com", 1)); err != nil {
		return err
	}
	if err := sessionErr(cancel("alice@example.com", 2)); err != nil {
		return err
	}
	return nil
}

// sessionErr filters out the rejections the session provokes on purpose;
// anything else is a real failure.
func sessionErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrOverbooking),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrSeatCountMismatch):
		return nil
	default:
		return err
	}
}
