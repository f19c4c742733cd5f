package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-booking/internal/queue"
	"github.com/iliyamo/bus-seat-booking/internal/repository"
)

// postBooking invokes BookingHandler.Create with the given JSON body as
// user 7 and returns the recorded response.
func postBooking(t *testing.T, h *BookingHandler, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authed {
		c.Set("user_id", uint64(7))
		c.Set("email", "rider@example.com")
	}
	// Errorf, not Fatalf: this helper also runs on test goroutines in the
	// concurrency test.
	if err := h.Create(c); err != nil {
		t.Errorf("handler returned error: %v", err)
	}
	return rec
}

func errKey(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	s, _ := body["error"].(string)
	return s
}

func TestCreateBookingScenario(t *testing.T) {
	buses := newMemBusStore(repository.Bus{ID: 1, Name: "Blue Line", Capacity: 40})
	bookings := newMemBookingStore()
	h := NewBookingHandler(buses, bookings, nil)

	// Seat 41 exceeds the 40-seat capacity.
	rec := postBooking(t, h, `{"bus_id":1,"seat_number":41}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("seat 41: expected 400, got %d", rec.Code)
	}

	// Seat 5 is free; the first booking gets id 1.
	rec = postBooking(t, h, `{"bus_id":1,"seat_number":5}`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("seat 5: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var ok struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &ok); err != nil {
		t.Fatalf("decode success body: %v", err)
	}
	if ok.ID != 1 {
		t.Fatalf("expected booking id 1, got %d", ok.ID)
	}

	// The same seat again conflicts.
	rec = postBooking(t, h, `{"bus_id":1,"seat_number":5}`, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("repeat seat 5: expected 409, got %d", rec.Code)
	}
	if key := errKey(t, rec); key != "seat_taken" {
		t.Fatalf("expected seat_taken, got %q", key)
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	h := NewBookingHandler(newMemBusStore(), newMemBookingStore(), nil)

	for _, body := range []string{`{}`, `{"bus_id":1}`, `{"seat_number":3}`} {
		rec := postBooking(t, h, body, true)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestCreateBookingUnknownBus(t *testing.T) {
	h := NewBookingHandler(newMemBusStore(), newMemBookingStore(), nil)

	rec := postBooking(t, h, `{"bus_id":99,"seat_number":1}`, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateBookingNegativeSeat(t *testing.T) {
	buses := newMemBusStore(repository.Bus{ID: 1, Name: "Blue Line", Capacity: 40})
	h := NewBookingHandler(buses, newMemBookingStore(), nil)

	rec := postBooking(t, h, `{"bus_id":1,"seat_number":-3}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateBookingNoIdentity(t *testing.T) {
	h := NewBookingHandler(newMemBusStore(), newMemBookingStore(), nil)

	rec := postBooking(t, h, `{"bus_id":1,"seat_number":1}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestCreateBookingConcurrentSingleWinner is the core correctness property:
// many simultaneous requests for the same seat must produce exactly one
// booking and conflicts for everyone else.
func TestCreateBookingConcurrentSingleWinner(t *testing.T) {
	const callers = 32

	buses := newMemBusStore(repository.Bus{ID: 1, Name: "Blue Line", Capacity: 40})
	bookings := newMemBookingStore()
	h := NewBookingHandler(buses, bookings, nil)

	codes := make([]int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := postBooking(t, h, `{"bus_id":1,"seat_number":9}`, true)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	okCount, conflictCount := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			okCount++
		case http.StatusConflict:
			conflictCount++
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}
	if okCount != 1 {
		t.Fatalf("expected exactly 1 success, got %d", okCount)
	}
	if conflictCount != callers-1 {
		t.Fatalf("expected %d conflicts, got %d", callers-1, conflictCount)
	}
}

func TestCreateBookingPublishesEvent(t *testing.T) {
	buses := newMemBusStore(repository.Bus{ID: 1, Name: "Blue Line", Capacity: 40})
	events := make(chan queue.BookingCreatedEvent, 1)
	publish := func(ctx context.Context, ev queue.BookingCreatedEvent) error {
		events <- ev
		return nil
	}
	h := NewBookingHandler(buses, newMemBookingStore(), publish)

	rec := postBooking(t, h, `{"bus_id":1,"seat_number":3}`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	select {
	case ev := <-events:
		if ev.BusID != 1 || ev.SeatNumber != 3 || ev.UserID != 7 {
			t.Fatalf("event mismatch: %+v", ev)
		}
		if ev.BusName != "Blue Line" || ev.Email != "rider@example.com" {
			t.Fatalf("event enrichment mismatch: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event published")
	}
}
