package repository

import (
	"context"
	"database/sql"
)

// Bus mirrors the 'buses' table. Buses are read-only here; fleet
// management happens out of band.
type Bus struct {
	ID         uint64
	Name       string
	DriverName string
	Capacity   uint32
	Route      string
}

type BusRepo struct{ DB *sql.DB }

func NewBusRepo(db *sql.DB) *BusRepo { return &BusRepo{DB: db} }

// ListAll returns every bus ordered by id ascending.
func (r *BusRepo) ListAll(ctx context.Context) ([]Bus, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,driver_name,capacity,route FROM buses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buses := make([]Bus, 0)
	for rows.Next() {
		var b Bus
		if err := rows.Scan(&b.ID, &b.Name, &b.DriverName, &b.Capacity, &b.Route); err != nil {
			return nil, err
		}
		buses = append(buses, b)
	}
	return buses, rows.Err()
}

// GetByID fetches a single bus. ErrBusNotFound is returned when the id
// does not reference an existing row.
func (r *BusRepo) GetByID(ctx context.Context, id uint64) (Bus, error) {
	var b Bus
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,driver_name,capacity,route FROM buses WHERE id=? LIMIT 1",
		id).Scan(&b.ID, &b.Name, &b.DriverName, &b.Capacity, &b.Route)
	if err == sql.ErrNoRows {
		return Bus{}, ErrBusNotFound
	}
	return b, err
}
