// Package store is the single owner of venues, bookings and notifications.
//
// Every mutation rewrites the whole state into one durable slot, and Load
// rehydrates from that slot, falling back to the built-in catalog when the
// slot is absent or unreadable.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/pricing"
)

var (
	ErrInvalidBooking = errors.New("invalid booking")
	ErrInvalidStatus  = errors.New("invalid booking status")
)

const persistTimeout = 10 * time.Second

type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

type Store struct {
	mu     sync.RWMutex
	repo   models.SlotRepo
	logger *slog.Logger
	now    func() time.Time

	state              models.State
	lastBookingID      int64
	lastNotificationID int64
}

// New returns a store holding the default catalog. Call Load to rehydrate.
func New(repo models.SlotRepo, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
		state:  models.DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load merges the persisted snapshot into the defaults. Keys present in the
// snapshot replace the in-memory value; absent keys keep the default. A
// missing or corrupt snapshot leaves the defaults in place and is only logged.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.DefaultState()
	defer s.recomputeSequences()

	blob, err := s.repo.GetSlot(ctx, models.BookingDataKey)
	if errors.Is(err, models.ErrSlotNotFound) {
		s.logger.Debug("No persisted booking data, using defaults")
		return
	}
	if err != nil {
		s.logger.Warn("Failed to read persisted booking data, using defaults", "error", err)
		return
	}

	loaded, err := decodeState(blob, s.state)
	if err != nil {
		s.logger.Warn("Discarding corrupt booking data", "error", err)
		return
	}
	s.state = loaded
	s.logger.Info("Booking data restored",
		"bookings", len(s.state.Bookings),
		"halls", len(s.state.Halls),
		"rooms", len(s.state.Rooms),
		"notifications", len(s.state.Notifications),
	)
}

func decodeState(blob []byte, base models.State) (models.State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return base, err
	}
	out := base
	if err := decodeKey(raw, "bookings", &out.Bookings); err != nil {
		return base, err
	}
	if err := decodeKey(raw, "halls", &out.Halls); err != nil {
		return base, err
	}
	if err := decodeKey(raw, "rooms", &out.Rooms); err != nil {
		return base, err
	}
	if err := decodeKey(raw, "notifications", &out.Notifications); err != nil {
		return base, err
	}
	return out, nil
}

// decodeKey leaves dst untouched when key is absent or null.
func decodeKey[T any](raw map[string]json.RawMessage, key string, dst *[]T) error {
	msg, ok := raw[key]
	if !ok || string(msg) == "null" {
		return nil
	}
	var v []T
	if err := json.Unmarshal(msg, &v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	if v == nil {
		v = []T{}
	}
	*dst = v
	return nil
}

func (s *Store) recomputeSequences() {
	s.lastBookingID, s.lastNotificationID = 0, 0
	for _, b := range s.state.Bookings {
		s.lastBookingID = max(s.lastBookingID, b.ID)
	}
	for _, n := range s.state.Notifications {
		s.lastNotificationID = max(s.lastNotificationID, n.ID)
	}
}

// nextID follows the creation clock in milliseconds but never repeats or goes
// backwards, even for bursts inside one millisecond or a clock step back.
func nextID(last int64, now time.Time) int64 {
	return max(now.UnixMilli(), last+1)
}

// AddBooking validates the candidate against the catalog, prices it, assigns
// identity, status and timestamp, records a notification and persists.
func (s *Store) AddBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return models.Booking{}, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	booking := models.Booking{
		Type:            req.Type,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}

	switch req.Type {
	case models.VenueHall:
		hall, ok := s.findHall(req.HallID)
		if !ok {
			return models.Booking{}, fmt.Errorf("%w: unknown hall %d", ErrInvalidBooking, req.HallID)
		}
		if err := pricing.ValidateEventDate(req.EventDate, now); err != nil {
			return models.Booking{}, fmt.Errorf("%w: event date: %v", ErrInvalidBooking, err)
		}
		if req.GuestCount < 1 || req.GuestCount > hall.Capacity {
			return models.Booking{}, fmt.Errorf("%w: guest count must be between 1 and %d", ErrInvalidBooking, hall.Capacity)
		}
		booking.HallID = hall.ID
		booking.HallName = hall.Name
		booking.EventDate = req.EventDate
		booking.EventTime = req.EventTime
		booking.GuestCount = req.GuestCount
		booking.TotalAmount = pricing.HallTotal(hall.Price)

	case models.VenueRoom:
		room, ok := s.findRoom(req.RoomID)
		if !ok {
			return models.Booking{}, fmt.Errorf("%w: unknown room %d", ErrInvalidBooking, req.RoomID)
		}
		nights, err := pricing.ValidateStay(req.CheckIn, req.CheckOut, now)
		if err != nil {
			return models.Booking{}, fmt.Errorf("%w: stay: %v", ErrInvalidBooking, err)
		}
		if req.Guests < 1 || req.Guests > models.MaxRoomGuests {
			return models.Booking{}, fmt.Errorf("%w: guests must be between 1 and %d", ErrInvalidBooking, models.MaxRoomGuests)
		}
		booking.RoomID = room.ID
		booking.RoomName = room.Name
		booking.CheckIn = req.CheckIn
		booking.CheckOut = req.CheckOut
		booking.Nights = nights
		booking.Guests = req.Guests
		booking.TotalAmount = pricing.RoomTotal(room.Price, nights)

	default:
		return models.Booking{}, fmt.Errorf("%w: unknown type %q", ErrInvalidBooking, req.Type)
	}

	s.lastBookingID = nextID(s.lastBookingID, now)
	booking.ID = s.lastBookingID
	booking.Status = models.BookingPending
	booking.PaymentStatus = models.PaymentCompleted
	booking.CreatedAt = now.UTC()
	s.state.Bookings = append(s.state.Bookings, booking)

	s.lastNotificationID = nextID(s.lastNotificationID, now)
	s.state.Notifications = append(s.state.Notifications, models.Notification{
		ID:        s.lastNotificationID,
		Message:   fmt.Sprintf("New %s booking received from %s", booking.Type, booking.CustomerName),
		Timestamp: now.UTC(),
		Read:      false,
	})

	s.persistLocked(ctx)
	s.logger.Info("Booking added",
		"booking_id", booking.ID,
		"type", booking.Type,
		"venue", booking.VenueName(),
		"total_amount", booking.TotalAmount,
	)
	return booking, nil
}

// UpdateBookingStatus moves a pending booking to confirmed or cancelled.
// Unknown ids are a no-op (found=false). Bookings already confirmed or
// cancelled are returned unchanged.
func (s *Store) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (booking models.Booking, found bool, err error) {
	if status != models.BookingConfirmed && status != models.BookingCancelled {
		return models.Booking{}, false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Bookings {
		b := &s.state.Bookings[i]
		if b.ID != id {
			continue
		}
		if b.Status.IsTerminal() {
			s.logger.Debug("Ignoring status change on settled booking",
				"booking_id", id, "status", b.Status, "requested", status)
			return *b, true, nil
		}
		b.Status = status
		s.persistLocked(ctx)
		s.logger.Info("Booking status updated", "booking_id", id, "status", status)
		return *b, true, nil
	}
	return models.Booking{}, false, nil
}

// MarkNotificationRead flips the read flag; it never goes back to unread.
func (s *Store) MarkNotificationRead(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notifications {
		n := &s.state.Notifications[i]
		if n.ID != id {
			continue
		}
		if !n.Read {
			n.Read = true
			s.persistLocked(ctx)
		}
		return true
	}
	return false
}

// MarkAllNotificationsRead returns how many notifications changed.
func (s *Store) MarkAllNotificationsRead(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.state.Notifications {
		if !s.state.Notifications[i].Read {
			s.state.Notifications[i].Read = true
			changed++
		}
	}
	if changed > 0 {
		s.persistLocked(ctx)
	}
	return changed
}

// persistLocked writes the whole state. Persistence is best-effort: a failed
// write is logged and the in-memory state stays authoritative.
func (s *Store) persistLocked(ctx context.Context) {
	blob, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Error("Failed to encode booking data", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := s.repo.SetSlot(ctx, models.BookingDataKey, blob); err != nil {
		s.logger.Error("Failed to persist booking data", "error", err)
	}
}

func (s *Store) findHall(id int64) (models.Hall, bool) {
	for _, h := range s.state.Halls {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hall{}, false
}

func (s *Store) findRoom(id int64) (models.Room, bool) {
	for _, r := range s.state.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}
