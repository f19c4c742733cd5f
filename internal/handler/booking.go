package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bus-seat-booking/internal/queue"
    "github.com/iliyamo/bus-seat-booking/internal/repository"
)

// BookingStore writes bookings.  Create must be atomic with respect to
// concurrent callers targeting the same (bus, seat): of two simultaneous
// requests exactly one may succeed and the other must observe
// repository.ErrSeatTaken.  The SQL implementation gets this from the
// unique key on (bus_id, seat_number).
type BookingStore interface {
    Create(ctx context.Context, busID, userID uint64, seatNumber uint32) (uint64, error)
}

// BookingHandler serves the protected booking endpoint.  Publish, when
// set, emits a booking.created event after a successful insert; event
// delivery is best effort and never affects the HTTP response.
type BookingHandler struct {
    Buses    BusStore
    Bookings BookingStore
    Publish  func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(buses BusStore, bookings BookingStore, publish func(context.Context, queue.BookingCreatedEvent) error) *BookingHandler {
    if buses == nil || bookings == nil {
        panic("nil store passed to NewBookingHandler")
    }
    return &BookingHandler{Buses: buses, Bookings: bookings, Publish: publish}
}

type createBookingReq struct {
    BusID      uint64 `json:"bus_id"`
    SeatNumber int64  `json:"seat_number"`
}

// Create handles POST /api/bookings.  Checks run fail-fast in a fixed
// order: required fields, bus existence, seat range, then the insert.
// There is no occupancy pre-check; the insert's unique key is the check,
// so a race between two callers for the same seat resolves to one 200 and
// one 409 regardless of timing.
func (h *BookingHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.BusID == 0 || req.SeatNumber == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "bus_id and seat_number required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    bus, err := h.Buses.GetByID(ctx, req.BusID)
    if err != nil {
        if errors.Is(err, repository.ErrBusNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "bus not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if req.SeatNumber < 1 || req.SeatNumber > int64(bus.Capacity) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat number"})
    }

    id, err := h.Bookings.Create(ctx, req.BusID, userID, uint32(req.SeatNumber))
    if err != nil {
        if errors.Is(err, repository.ErrSeatTaken) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "seat_taken"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
    }

    if h.Publish != nil {
        ev := queue.BookingCreatedEvent{
            BookingID:  id,
            BusID:      bus.ID,
            BusName:    bus.Name,
            UserID:     userID,
            Email:      getEmail(c),
            SeatNumber: uint32(req.SeatNumber),
            CreatedAt:  time.Now().UTC().Format(time.RFC3339),
        }
        // Detach from the request context so a slow broker cannot delay or
        // fail the booking response.
        go func() {
            pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
            defer pubCancel()
            if err := h.Publish(pubCtx, ev); err != nil {
                log.Printf("booking event publish failed: %v", err)
            }
        }()
    }

    return c.JSON(http.StatusOK, echo.Map{"id": id})
}
