package domain

import "errors"

var (
	// ErrOverbooking is returned by BookSeats when the requested seat count
	// exceeds the seats still available. The ledger is left unchanged.
	ErrOverbooking = errors.New("not enough seats available")

	// ErrBookingNotFound is returned by CancelBookedSeats when the passenger
	// holds no booking on the flight. The ledger is left unchanged.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSeatCountMismatch reports a cancellation for a passenger who does
	// hold bookings, but none with the requested seat count. The entity never
	// returns it on its own; the ledger service uses it when strict
	// cancellation is enabled.
	ErrSeatCountMismatch = errors.New("no booking with matching seat count")

	// ErrInvalidTotalSeats rejects creating a flight without a positive
	// seat capacity.
	ErrInvalidTotalSeats = errors.New("total seats must be positive")

	// ErrEmptyPassenger rejects operations with an empty passenger identifier.
	ErrEmptyPassenger = errors.New("passenger identifier is empty")

	// ErrInvalidSeatCount rejects operations with a non-positive seat count.
	ErrInvalidSeatCount = errors.New("seat count must be positive")
)
