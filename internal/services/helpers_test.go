package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/store"
)

var testNow = time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedNow() time.Time {
	return testNow
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(models.MemoryNewRepo(), store.WithClock(fixedNow), store.WithLogger(testLogger()))
	s.Load(context.Background())
	return s
}

// recordingSleeper returns immediately and remembers the requested delays.
type recordingSleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *recordingSleeper) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delays...)
}

func newTestPayments() (*PaymentService, *recordingSleeper) {
	sleeper := &recordingSleeper{}
	ps := NewPaymentService(DefaultCardDelay, DefaultUPIDelay, testLogger()).WithSleeper(sleeper.Sleep)
	ps.now = fixedNow
	return ps, sleeper
}

func validCard() *CardDetails {
	return &CardDetails{
		CardholderName: "Asha Verma",
		CardNumber:     "4111111111111111",
		ExpiryDate:     "1228",
		CVV:            "123",
	}
}

func hallBooking() models.BookingRequest {
	return models.BookingRequest{
		Type:         models.VenueHall,
		HallID:       1,
		CustomerName: "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		EventDate:    "2024-02-14",
		EventTime:    models.SlotEvening,
		GuestCount:   250,
	}
}

func roomBooking() models.BookingRequest {
	return models.BookingRequest{
		Type:         models.VenueRoom,
		RoomID:       3,
		CustomerName: "Ravi Kumar",
		Email:        "ravi@example.com",
		Phone:        "9123456780",
		CheckIn:      "2024-01-10",
		CheckOut:     "2024-01-13",
		Guests:       2,
	}
}
