package domain

// Flight is the seat inventory ledger for a single flight: a fixed total
// capacity, the seats still available, and every booking taken against it in
// the order it was made.
//
// A Flight is not safe for concurrent use. Callers that share one across
// goroutines serialize access themselves; the ledger service keeps a mutex
// per flight for exactly that.
type Flight struct {
	id             string
	number         string
	totalSeats     int
	remainingSeats int
	bookings       []Booking
}

// NewFlight creates an empty ledger with the given capacity. The id must be
// unique among flights and never changes; the number is a human-readable
// label and may be empty.
func NewFlight(id, number string, totalSeats int) (*Flight, error) {
	if totalSeats <= 0 {
		return nil, ErrInvalidTotalSeats
	}

	return &Flight{
		id:             id,
		number:         number,
		totalSeats:     totalSeats,
		remainingSeats: totalSeats,
	}, nil
}

// BookSeats reserves seats for the passenger. On success the booking is
// appended to the history and RemainingSeats drops by seats; on any error
// the ledger is unchanged.
func (f *Flight) BookSeats(passenger string, seats int) error {
	if passenger == "" {
		return ErrEmptyPassenger
	}
	if seats <= 0 {
		return ErrInvalidSeatCount
	}
	if seats > f.remainingSeats {
		return ErrOverbooking
	}

	f.bookings = append(f.bookings, Booking{Passenger: passenger, Seats: seats})
	f.remainingSeats -= seats

	return nil
}

// CancelBookedSeats returns seats to the flight. It fails with
// ErrBookingNotFound when the passenger holds no booking at all. Otherwise
// the call succeeds: the first booking matching both passenger and seat
// count is removed, and RemainingSeats grows by seats, capped at TotalSeats.
// When no booking matches the seat count exactly, the history is left as it
// is while the seats are still returned.
func (f *Flight) CancelBookedSeats(passenger string, seats int) error {
	if passenger == "" {
		return ErrEmptyPassenger
	}
	if seats <= 0 {
		return ErrInvalidSeatCount
	}
	if !f.holdsBookingFor(passenger) {
		return ErrBookingNotFound
	}

	if i := f.indexOfBooking(passenger, seats); i >= 0 {
		f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
	}

	f.remainingSeats += seats
	if f.remainingSeats > f.totalSeats {
		f.remainingSeats = f.totalSeats
	}

	return nil
}

func (f *Flight) holdsBookingFor(passenger string) bool {
	for _, b := range f.bookings {
		if b.Passenger == passenger {
			return true
		}
	}

	return false
}

func (f *Flight) indexOfBooking(passenger string, seats int) int {
	for i, b := range f.bookings {
		if b.Passenger == passenger && b.Seats == seats {
			return i
		}
	}

	return -1
}

func (f *Flight) ID() string {
	return f.id
}

func (f *Flight) Number() string {
	return f.number
}

func (f *Flight) TotalSeats() int {
	return f.totalSeats
}

func (f *Flight) RemainingSeats() int {
	return f.remainingSeats
}

// Bookings returns the booking history in insertion order. The returned
// slice is a copy; mutating it does not touch the ledger.
func (f *Flight) Bookings() []Booking {
	out := make([]Booking, len(f.bookings))
	copy(out, f.bookings)

	return out
}

// Snapshot is a point-in-time view of a flight, safe to hand out and
// serialize. It shares no state with the ledger it was taken from.
type Snapshot struct {
	ID             string    `json:"id"`
	Number         string    `json:"number"`
	TotalSeats     int       `json:"total_seats"`
	RemainingSeats int       `json:"remaining_seats"`
	Bookings       []Booking `json:"bookings"`
}

func (f *Flight) Snapshot() Snapshot {
	return Snapshot{
		ID:             f.id,
		Number:         f.number,
		TotalSeats:     f.totalSeats,
		RemainingSeats: f.remainingSeats,
		Bookings:       f.Bookings(),
	}
}
