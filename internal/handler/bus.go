package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bus-seat-booking/internal/repository"
)

// BusStore provides read access to the bus catalog.
type BusStore interface {
    ListAll(ctx context.Context) ([]repository.Bus, error)
    GetByID(ctx context.Context, id uint64) (repository.Bus, error)
}

// SeatStore provides the occupancy listing of a bus.
type SeatStore interface {
    OccupiedSeats(ctx context.Context, busID uint64) ([]repository.OccupiedSeat, error)
}

// BusHandler serves the public catalog: the bus list and per-bus seat
// views.  Both endpoints are unauthenticated and sit behind the response
// cache middleware, so the data may be a few seconds stale; clients
// re-fetch after every booking attempt.
type BusHandler struct {
    Buses    BusStore
    Bookings SeatStore
}

func NewBusHandler(buses BusStore, bookings SeatStore) *BusHandler {
    return &BusHandler{Buses: buses, Bookings: bookings}
}

type busPart struct {
    ID         uint64 `json:"id"`
    Name       string `json:"name"`
    DriverName string `json:"driver_name"`
    Capacity   uint32 `json:"capacity"`
    Route      string `json:"route"`
}

type seatViewResp struct {
    Capacity uint32                    `json:"capacity"`
    Seats    []repository.OccupiedSeat `json:"seats"`
}

// List handles GET /api/buses and returns all buses ordered by id.
func (h *BusHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    buses, err := h.Buses.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]busPart, 0, len(buses))
    for _, b := range buses {
        out = append(out, busPart{ID: b.ID, Name: b.Name, DriverName: b.DriverName, Capacity: b.Capacity, Route: b.Route})
    }
    return c.JSON(http.StatusOK, out)
}

// Seats handles GET /api/buses/:id/seats.  It returns the bus capacity and
// the occupied seats so clients can render the seat grid.
func (h *BusHandler) Seats(c echo.Context) error {
    busID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || busID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    bus, err := h.Buses.GetByID(ctx, busID)
    if err != nil {
        if errors.Is(err, repository.ErrBusNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    seats, err := h.Bookings.OccupiedSeats(ctx, busID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, seatViewResp{Capacity: bus.Capacity, Seats: seats})
}
