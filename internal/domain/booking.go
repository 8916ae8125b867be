package domain

// Booking is one passenger's reservation of a number of seats on a flight.
// Bookings are plain values: two entries with the same passenger and seat
// count are indistinguishable, and a passenger may hold several of them.
type Booking struct {
	Passenger string `json:"passenger"`
	Seats     int    `json:"seats"`
}
