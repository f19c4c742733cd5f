package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Booking mirrors the 'bookings' table. Bookings are insert-only: there
// is no cancellation or seat release path.
type Booking struct {
	ID         uint64
	BusID      uint64
	UserID     uint64
	SeatNumber uint32
	CreatedAt  time.Time
}

// OccupiedSeat is one entry of a bus's seat view: which seat is taken
// and by whom. The listing carries no particular order.
type OccupiedSeat struct {
	SeatNumber uint32 `json:"seat_number"`
	UserID     uint64 `json:"user_id"`
}

type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking and returns its id. The insert itself is the
// occupancy check: the uq_bus_seat unique key serializes concurrent
// attempts on the same (bus, seat) pair, and the duplicate-key error from
// the losing insert is reported as ErrSeatTaken. There is deliberately no
// separate SELECT before the INSERT; a read-then-write sequence would let
// two racing requests both pass the read.
func (r *BookingRepo) Create(ctx context.Context, busID, userID uint64, seatNumber uint32) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (bus_id, user_id, seat_number, created_at) VALUES (?,?,?,UTC_TIMESTAMP())",
		busID, userID, seatNumber)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrSeatTaken
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// OccupiedSeats lists the occupied seats of a bus for the seat view.
func (r *BookingRepo) OccupiedSeats(ctx context.Context, busID uint64) ([]OccupiedSeat, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT seat_number,user_id FROM bookings WHERE bus_id=?",
		busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]OccupiedSeat, 0)
	for rows.Next() {
		var s OccupiedSeat
		if err := rows.Scan(&s.SeatNumber, &s.UserID); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
