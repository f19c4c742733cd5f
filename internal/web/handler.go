package web

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bus-seat-booking/internal/repository"
)

// Catalog is the read side of the bus store needed by the pages.
type Catalog interface {
    ListAll(ctx context.Context) ([]repository.Bus, error)
    GetByID(ctx context.Context, id uint64) (repository.Bus, error)
}

// Occupancy lists the occupied seats of a bus.
type Occupancy interface {
    OccupiedSeats(ctx context.Context, busID uint64) ([]repository.OccupiedSeat, error)
}

// Handler renders the frontend pages.  GridCols controls the width of the
// seat grid; rows are computed to cover the bus capacity.
type Handler struct {
    Buses    Catalog
    Bookings Occupancy
    GridCols int
}

func NewHandler(buses Catalog, bookings Occupancy, gridCols int) *Handler {
    if gridCols < 1 {
        gridCols = 4
    }
    return &Handler{Buses: buses, Bookings: bookings, GridCols: gridCols}
}

// BusesPage handles GET / and renders the bus list.
func (h *Handler) BusesPage(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    buses, err := h.Buses.ListAll(ctx)
    if err != nil {
        return c.String(http.StatusInternalServerError, "failed to load buses")
    }
    return c.Render(http.StatusOK, "buses.html", echo.Map{"Buses": buses})
}

// SeatPage handles GET /bus/:id and renders the seat grid for one bus.
// Occupied seats are disabled in the markup; selection and the booking
// submission happen in the page script against the JSON API.
func (h *Handler) SeatPage(c echo.Context) error {
    busID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || busID == 0 {
        return c.String(http.StatusNotFound, "bus not found")
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    bus, err := h.Buses.GetByID(ctx, busID)
    if err != nil {
        if errors.Is(err, repository.ErrBusNotFound) {
            return c.String(http.StatusNotFound, "bus not found")
        }
        return c.String(http.StatusInternalServerError, "failed to load bus")
    }
    occ, err := h.Bookings.OccupiedSeats(ctx, busID)
    if err != nil {
        return c.String(http.StatusInternalServerError, "failed to load seats")
    }
    occupied := make(map[uint32]bool, len(occ))
    for _, s := range occ {
        occupied[s.SeatNumber] = true
    }
    grid := BuildSeatGrid(bus.Capacity, uint32(h.GridCols), occupied)

    return c.Render(http.StatusOK, "seats.html", echo.Map{"Bus": bus, "Grid": grid})
}
