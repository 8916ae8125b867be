package ledger

import "context"

const (
	OpCreateFlight = "create_flight"
	OpBookSeats    = "book_seats"
	OpCancelSeats  = "cancel_seats"
)

// OperationLog is one record in the operation trail: which operation ran,
// against which flight, and how many seats remained right after. Err is set
// when the operation was rejected.
type OperationLog struct {
	Operation string
	FlightID  string
	Passenger string
	Seats     int
	Remaining int
	Err       error
}

// OperationLogger receives a record for every operation the service applies
// or rejects. Implementations must be safe for concurrent use.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}
