// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to HTTP status codes without inspecting driver errors directly.
package repository

import "errors"

// ErrBusNotFound is returned when a bus ID does not reference an
// existing bus. Handlers should translate this into an HTTP 404
// response.
var ErrBusNotFound = errors.New("bus not found")

// ErrSeatTaken is returned when a booking insert collides with an
// existing booking for the same (bus, seat) pair. The uniqueness
// constraint on bookings raises this for the loser of a concurrent
// race, so it is the authoritative signal that a seat is occupied.
// Handlers should translate this into an HTTP 409 response.
var ErrSeatTaken = errors.New("seat taken")
