package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Domenick1991/seatledger/internal/domain"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrFlightExists   = errors.New("flight already exists")
)

type FlightRepository interface {
	Add(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	// List returns flights in the order they were added.
	List(ctx context.Context) ([]*domain.Flight, error)
}

type MemoryFlightRepository struct {
	mu      sync.RWMutex
	flights map[string]*domain.Flight
	order   []string
}

func NewFlightRepository() FlightRepository {
	return &MemoryFlightRepository{
		flights: make(map[string]*domain.Flight),
	}
}

func (r *MemoryFlightRepository) Add(_ context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[flight.ID()]; ok {
		return ErrFlightExists
	}

	r.flights[flight.ID()] = flight
	r.order = append(r.order, flight.ID())
	return nil
}

func (r *MemoryFlightRepository) GetByID(_ context.Context, id string) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flight, ok := r.flights[id]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

func (r *MemoryFlightRepository) List(_ context.Context) ([]*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := make([]*domain.Flight, 0, len(r.order))
	for _, id := range r.order {
		flights = append(flights, r.flights[id])
	}
	return flights, nil
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
