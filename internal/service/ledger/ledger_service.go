package ledger

import (
	"context"
	"sync"

	"github.com/Domenick1991/seatledger/internal/domain"
	"github.com/Domenick1991/seatledger/internal/repository"
	"github.com/google/uuid"
)

// LedgerUseCase is the single entry point for seat inventory. Every read and
// write on a flight's ledger goes through it; callers never touch a
// domain.Flight directly and only ever see snapshots and booking values.
type LedgerUseCase interface {
	CreateFlight(ctx context.Context, input CreateFlightInput) (domain.Snapshot, error)
	ListFlights(ctx context.Context) ([]domain.Snapshot, error)
	GetFlight(ctx context.Context, flightID string) (domain.Snapshot, error)
	BookSeats(ctx context.Context, input BookSeatsInput) error
	CancelSeats(ctx context.Context, input CancelSeatsInput) error
	RemainingSeats(ctx context.Context, flightID string) (int, error)
	Bookings(ctx context.Context, flightID string) ([]domain.Booking, error)
}

type LedgerService struct {
	flights repository.FlightRepository
	oplog   OperationLogger
	strict  bool

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

type CreateFlightInput struct {
	Number     string `json:"number"`
	TotalSeats int    `json:"total_seats"`
}

type BookSeatsInput struct {
	FlightID  string `json:"flight_id"`
	Passenger string `json:"passenger"`
	Seats     int    `json:"seats"`
}

type CancelSeatsInput struct {
	FlightID  string `json:"flight_id"`
	Passenger string `json:"passenger"`
	Seats     int    `json:"seats"`
}

type LedgerServiceOption func(*LedgerService)

// WithStrictCancellation makes CancelSeats reject a passenger whose bookings
// exist but none of which matches the requested seat count, instead of the
// permissive default that returns the seats anyway.
func WithStrictCancellation() LedgerServiceOption {
	return func(s *LedgerService) {
		s.strict = true
	}
}

func WithOperationLogger(oplog OperationLogger) LedgerServiceOption {
	return func(s *LedgerService) {
		s.oplog = oplog
	}
}

func NewLedgerService(flights repository.FlightRepository, opts ...LedgerServiceOption) *LedgerService {
	service := &LedgerService{
		flights: flights,
		locks:   make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *LedgerService) CreateFlight(ctx context.Context, input CreateFlightInput) (domain.Snapshot, error) {
	flight, err := domain.NewFlight(uuid.NewString(), input.Number, input.TotalSeats)
	if err != nil {
		return domain.Snapshot{}, err
	}

	// Snapshot before publishing the flight, so no concurrent booking can
	// slip in between.
	snap := flight.Snapshot()
	if err := s.flights.Add(ctx, flight); err != nil {
		return domain.Snapshot{}, err
	}

	s.logOperation(ctx, OperationLog{
		Operation: OpCreateFlight,
		FlightID:  snap.ID,
		Seats:     snap.TotalSeats,
		Remaining: snap.RemainingSeats,
	})
	return snap, nil
}

func (s *LedgerService) ListFlights(ctx context.Context) ([]domain.Snapshot, error) {
	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.Snapshot, 0, len(flights))
	for _, flight := range flights {
		lock := s.flightLock(flight.ID())
		lock.Lock()
		snapshots = append(snapshots, flight.Snapshot())
		lock.Unlock()
	}
	return snapshots, nil
}

func (s *LedgerService) GetFlight(ctx context.Context, flightID string) (domain.Snapshot, error) {
	lock := s.flightLock(flightID)
	lock.Lock()
	defer lock.Unlock()

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return flight.Snapshot(), nil
}

func (s *LedgerService) BookSeats(ctx context.Context, input BookSeatsInput) error {
	lock := s.flightLock(input.FlightID)
	lock.Lock()
	defer lock.Unlock()

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return err
	}

	err = flight.BookSeats(input.Passenger, input.Seats)
	s.logOperation(ctx, OperationLog{
		Operation: OpBookSeats,
		FlightID:  input.FlightID,
		Passenger: input.Passenger,
		Seats:     input.Seats,
		Remaining: flight.RemainingSeats(),
		Err:       err,
	})
	return err
}

func (s *LedgerService) CancelSeats(ctx context.Context, input CancelSeatsInput) error {
	lock := s.flightLock(input.FlightID)
	lock.Lock()
	defer lock.Unlock()

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return err
	}

	err = s.cancelSeats(flight, input)
	s.logOperation(ctx, OperationLog{
		Operation: OpCancelSeats,
		FlightID:  input.FlightID,
		Passenger: input.Passenger,
		Seats:     input.Seats,
		Remaining: flight.RemainingSeats(),
		Err:       err,
	})
	return err
}

// cancelSeats applies one cancellation to a flight the caller holds the lock
// for. In strict mode a passenger who has bookings, but none matching the
// requested seat count, is rejected up front; invalid input is left to the
// entity so it reports the same errors in both modes.
func (s *LedgerService) cancelSeats(flight *domain.Flight, input CancelSeatsInput) error {
	if s.strict && input.Passenger != "" && input.Seats > 0 {
		held, exact := false, false
		for _, b := range flight.Bookings() {
			if b.Passenger != input.Passenger {
				continue
			}
			held = true
			if b.Seats == input.Seats {
				exact = true
				break
			}
		}
		if held && !exact {
			return domain.ErrSeatCountMismatch
		}
	}
	return flight.CancelBookedSeats(input.Passenger, input.Seats)
}

func (s *LedgerService) RemainingSeats(ctx context.Context, flightID string) (int, error) {
	lock := s.flightLock(flightID)
	lock.Lock()
	defer lock.Unlock()

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return 0, err
	}
	return flight.RemainingSeats(), nil
}

func (s *LedgerService) Bookings(ctx context.Context, flightID string) ([]domain.Booking, error) {
	lock := s.flightLock(flightID)
	lock.Lock()
	defer lock.Unlock()

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	return flight.Bookings(), nil
}

// flightLock returns the mutex serializing all access to one flight's
// ledger. Flights are independent, so operations on different flights never
// contend.
func (s *LedgerService) flightLock(flightID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[flightID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[flightID] = lock
	}
	return lock
}

func (s *LedgerService) logOperation(ctx context.Context, entry OperationLog) {
	if s.oplog == nil {
		return
	}
	s.oplog.LogOperation(ctx, entry)
}

var _ LedgerUseCase = (*LedgerService)(nil)
