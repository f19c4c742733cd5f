package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateBookingReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(1, 7, 5).
		WillReturnResult(sqlmock.NewResult(11, 1))

	repo := NewBookingRepo(db)
	id, err := repo.Create(context.Background(), 1, 7, 5)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 11 {
		t.Fatalf("id mismatch: got %d want 11", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingDuplicateKeyMapsToSeatTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// The driver error for a uq_bus_seat collision; the repo must report it
	// as ErrSeatTaken, never as a generic failure.
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(1, 7, 5).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '1-5' for key 'bookings.uq_bus_seat'"))

	repo := NewBookingRepo(db)
	if _, err := repo.Create(context.Background(), 1, 7, 5); !errors.Is(err, ErrSeatTaken) {
		t.Fatalf("expected ErrSeatTaken, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOccupiedSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"seat_number", "user_id"}).
		AddRow(5, 7).
		AddRow(12, 3)
	mock.ExpectQuery("SELECT seat_number,user_id FROM bookings WHERE bus_id=").
		WithArgs(1).
		WillReturnRows(rows)

	repo := NewBookingRepo(db)
	seats, err := repo.OccupiedSeats(context.Background(), 1)
	if err != nil {
		t.Fatalf("occupied seats error: %v", err)
	}
	if len(seats) != 2 {
		t.Fatalf("expected 2 occupied seats, got %d", len(seats))
	}
	if seats[0].SeatNumber != 5 || seats[0].UserID != 7 {
		t.Fatalf("row scan mismatch: %+v", seats[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOccupiedSeatsEmptyBus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT seat_number,user_id FROM bookings WHERE bus_id=").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number", "user_id"}))

	repo := NewBookingRepo(db)
	seats, err := repo.OccupiedSeats(context.Background(), 2)
	if err != nil {
		t.Fatalf("occupied seats error: %v", err)
	}
	if seats == nil || len(seats) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", seats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
