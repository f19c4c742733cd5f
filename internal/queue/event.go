// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a seat booking is committed.  It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
    BookingID  uint64 `json:"booking_id"`
    BusID      uint64 `json:"bus_id"`
    BusName    string `json:"bus_name"`
    UserID     uint64 `json:"user_id"`
    Email      string `json:"email"`
    SeatNumber uint32 `json:"seat_number"`
    CreatedAt  string `json:"created_at"`
}
