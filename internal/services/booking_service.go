package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/pricing"
	"github.com/joshua-takyi/hallbook/internal/store"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrInvalidQuote  = errors.New("invalid quote request")
)

// BookingStore is what checkout needs from the booking store.
type BookingStore interface {
	CatalogReader
	AddBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error)
}

type QuoteRequest struct {
	Type      models.VenueType `json:"type" validate:"required,oneof=hall room"`
	HallID    int64            `json:"hallId,omitempty" validate:"required_if=Type hall,omitempty,gt=0"`
	RoomID    int64            `json:"roomId,omitempty" validate:"required_if=Type room,omitempty,gt=0"`
	EventDate string           `json:"eventDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckIn   string           `json:"checkIn,omitempty" validate:"required_if=Type room,omitempty,datetime=2006-01-02"`
	CheckOut  string           `json:"checkOut,omitempty" validate:"required_if=Type room,omitempty,datetime=2006-01-02"`
}

type QuoteResult struct {
	Type                   models.VenueType `json:"type"`
	VenueID                int64            `json:"venueId"`
	VenueName              string           `json:"venueName"`
	UnitPrice              float64          `json:"unitPrice"`
	Nights                 int              `json:"nights,omitempty"`
	BaseAmount             float64          `json:"baseAmount"`
	ServiceCharge          float64          `json:"serviceCharge"`
	TotalAmount            float64          `json:"totalAmount"`
	FormattedBase          string           `json:"formattedBaseAmount"`
	FormattedServiceCharge string           `json:"formattedServiceCharge"`
	FormattedTotal         string           `json:"formattedTotalAmount"`
}

type CheckoutRequest struct {
	Booking       models.BookingRequest `json:"booking"`
	PaymentMethod PaymentMethod         `json:"paymentMethod"`
	Card          *CardDetails          `json:"card,omitempty"`
}

type CheckoutResult struct {
	Booking models.Booking  `json:"booking"`
	Quote   *QuoteResult    `json:"quote"`
	Receipt *PaymentReceipt `json:"receipt"`
}

type TimeSlotOption struct {
	Value models.TimeSlot `json:"value"`
	Label string          `json:"label"`
}

type DateLimits struct {
	MinEventDate   string `json:"minEventDate"`
	MinCheckIn     string `json:"minCheckIn"`
	MinCheckOut    string `json:"minCheckOut"`
	MaxRoomGuests  int    `json:"maxRoomGuests"`
	ServiceCharge  string `json:"serviceChargeRate"`
	CurrencySymbol string `json:"currencySymbol"`
}

type BookingService struct {
	store    BookingStore
	payments *PaymentService
	logger   *slog.Logger
	now      func() time.Time
}

func NewBookingService(bookingStore BookingStore, payments *PaymentService, logger *slog.Logger) *BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingService{
		store:    bookingStore,
		payments: payments,
		logger:   logger,
		now:      time.Now,
	}
}

func (bs *BookingService) TimeSlots() []TimeSlotOption {
	slots := models.TimeSlots()
	out := make([]TimeSlotOption, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlotOption{Value: s, Label: s.Label()})
	}
	return out
}

// DateLimits reports the earliest selectable dates; checkIn may be empty.
func (bs *BookingService) DateLimits(checkIn string) DateLimits {
	now := bs.now()
	return DateLimits{
		MinEventDate:   pricing.MinEventDate(now),
		MinCheckIn:     pricing.MinEventDate(now),
		MinCheckOut:    pricing.MinCheckOutDate(checkIn, now),
		MaxRoomGuests:  models.MaxRoomGuests,
		ServiceCharge:  fmt.Sprintf("%.0f%%", pricing.ServiceChargeRate*100),
		CurrencySymbol: pricing.CurrencySymbol,
	}
}

// Quote prices a hall day or a room stay against the current catalog.
func (bs *BookingService) Quote(req QuoteRequest) (*QuoteResult, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}
	now := bs.now()

	switch req.Type {
	case models.VenueHall:
		hall, ok := bs.store.Hall(req.HallID)
		if !ok {
			return nil, fmt.Errorf("%w: hall %d", ErrVenueNotFound, req.HallID)
		}
		if req.EventDate != "" {
			if err := pricing.ValidateEventDate(req.EventDate, now); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
			}
		}
		return newQuoteResult(req.Type, hall.ID, hall.Name, hall.Price, pricing.HallQuote(hall.Price)), nil

	case models.VenueRoom:
		room, ok := bs.store.Room(req.RoomID)
		if !ok {
			return nil, fmt.Errorf("%w: room %d", ErrVenueNotFound, req.RoomID)
		}
		nights, err := pricing.ValidateStay(req.CheckIn, req.CheckOut, now)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
		}
		return newQuoteResult(req.Type, room.ID, room.Name, room.Price, pricing.RoomQuote(room.Price, nights)), nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidQuote, req.Type)
}

func newQuoteResult(t models.VenueType, id int64, name string, unit float64, q pricing.Quote) *QuoteResult {
	return &QuoteResult{
		Type:                   t,
		VenueID:                id,
		VenueName:              name,
		UnitPrice:              unit,
		Nights:                 q.Nights,
		BaseAmount:             q.BaseAmount,
		ServiceCharge:          q.ServiceCharge,
		TotalAmount:            q.TotalAmount,
		FormattedBase:          pricing.FormatPrice(q.BaseAmount),
		FormattedServiceCharge: pricing.FormatPrice(q.ServiceCharge),
		FormattedTotal:         pricing.FormatPrice(q.TotalAmount),
	}
}

// Checkout quotes the request, runs the simulated payment and records the
// booking. The candidate is checked before payment so that nothing is
// charged for a booking the store would reject.
func (bs *BookingService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if err := models.Validate.Struct(req.Booking); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidBooking, err)
	}

	quote, err := bs.Quote(QuoteRequest{
		Type:      req.Booking.Type,
		HallID:    req.Booking.HallID,
		RoomID:    req.Booking.RoomID,
		EventDate: req.Booking.EventDate,
		CheckIn:   req.Booking.CheckIn,
		CheckOut:  req.Booking.CheckOut,
	})
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidBooking, err)
	}
	if err := bs.checkGuests(req.Booking); err != nil {
		return nil, err
	}

	receipt, err := bs.payments.Process(ctx, req.PaymentMethod, quote.TotalAmount, req.Card)
	if err != nil {
		return nil, err
	}

	booking, err := bs.store.AddBooking(ctx, req.Booking)
	if err != nil {
		bs.logger.Error("Booking rejected after payment",
			"transaction_id", receipt.TransactionID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	return &CheckoutResult{
		Booking: booking,
		Quote:   quote,
		Receipt: receipt,
	}, nil
}

func (bs *BookingService) checkGuests(req models.BookingRequest) error {
	if req.Type == models.VenueHall {
		hall, _ := bs.store.Hall(req.HallID)
		if req.GuestCount < 1 || req.GuestCount > hall.Capacity {
			return fmt.Errorf("%w: guest count must be between 1 and %d", store.ErrInvalidBooking, hall.Capacity)
		}
		return nil
	}
	if req.Guests < 1 || req.Guests > models.MaxRoomGuests {
		return fmt.Errorf("%w: guests must be between 1 and %d", store.ErrInvalidBooking, models.MaxRoomGuests)
	}
	return nil
}
