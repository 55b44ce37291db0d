package models

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

type PaymentStatus string

// PaymentCompleted is the only payment status a booking can carry.
const PaymentCompleted PaymentStatus = "completed"

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotFullDay   TimeSlot = "fullday"
)

var timeSlotLabels = map[TimeSlot]string{
	SlotMorning:   "Morning (6 AM - 12 PM)",
	SlotAfternoon: "Afternoon (12 PM - 6 PM)",
	SlotEvening:   "Evening (6 PM - 12 AM)",
	SlotFullDay:   "Full Day (6 AM - 12 AM)",
}

// TimeSlots lists the event slots in display order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotFullDay}
}

func (t TimeSlot) Label() string {
	if l, ok := timeSlotLabels[t]; ok {
		return l
	}
	return string(t)
}

// Booking is a customer's reservation of a hall (one event day) or a room (a stay).
// Hall bookings carry EventDate, EventTime and GuestCount; room bookings carry
// CheckIn, CheckOut, Nights and Guests.
type Booking struct {
	ID              int64         `json:"id" bson:"id"`
	Type            VenueType     `json:"type" bson:"type"`
	HallID          int64         `json:"hallId,omitempty" bson:"hall_id,omitempty"`
	HallName        string        `json:"hallName,omitempty" bson:"hall_name,omitempty"`
	RoomID          int64         `json:"roomId,omitempty" bson:"room_id,omitempty"`
	RoomName        string        `json:"roomName,omitempty" bson:"room_name,omitempty"`
	CustomerName    string        `json:"customerName" bson:"customer_name"`
	Email           string        `json:"email" bson:"email"`
	Phone           string        `json:"phone" bson:"phone"`
	EventDate       string        `json:"eventDate,omitempty" bson:"event_date,omitempty"`
	EventTime       TimeSlot      `json:"eventTime,omitempty" bson:"event_time,omitempty"`
	GuestCount      int           `json:"guestCount,omitempty" bson:"guest_count,omitempty"`
	CheckIn         string        `json:"checkIn,omitempty" bson:"check_in,omitempty"`
	CheckOut        string        `json:"checkOut,omitempty" bson:"check_out,omitempty"`
	Nights          int           `json:"nights,omitempty" bson:"nights,omitempty"`
	Guests          int           `json:"guests,omitempty" bson:"guests,omitempty"`
	TotalAmount     float64       `json:"totalAmount" bson:"total_amount"`
	SpecialRequests string        `json:"specialRequests" bson:"special_requests"`
	PaymentStatus   PaymentStatus `json:"paymentStatus" bson:"payment_status"`
	Status          BookingStatus `json:"status" bson:"status"`
	CreatedAt       time.Time     `json:"createdAt" bson:"created_at"`
}

func (b Booking) VenueID() int64 {
	if b.Type == VenueHall {
		return b.HallID
	}
	return b.RoomID
}

func (b Booking) VenueName() string {
	if b.Type == VenueHall {
		return b.HallName
	}
	return b.RoomName
}

// GuestTotal returns the party size regardless of booking type.
func (b Booking) GuestTotal() int {
	if b.Type == VenueHall {
		return b.GuestCount
	}
	return b.Guests
}

// BookingRequest is the candidate payload accepted by the store. It carries no
// identifier, status, payment status or timestamp; the store assigns those.
type BookingRequest struct {
	Type            VenueType `json:"type" validate:"required,oneof=hall room"`
	HallID          int64     `json:"hallId,omitempty" validate:"required_if=Type hall,omitempty,gt=0"`
	RoomID          int64     `json:"roomId,omitempty" validate:"required_if=Type room,omitempty,gt=0"`
	CustomerName    string    `json:"customerName" validate:"required,min=2,max=100"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           string    `json:"phone" validate:"required,min=7,max=20"`
	EventDate       string    `json:"eventDate,omitempty" validate:"required_if=Type hall,omitempty,datetime=2006-01-02"`
	EventTime       TimeSlot  `json:"eventTime,omitempty" validate:"required_if=Type hall,omitempty,oneof=morning afternoon evening fullday"`
	GuestCount      int       `json:"guestCount,omitempty" validate:"required_if=Type hall,omitempty,gt=0"`
	CheckIn         string    `json:"checkIn,omitempty" validate:"required_if=Type room,omitempty,datetime=2006-01-02"`
	CheckOut        string    `json:"checkOut,omitempty" validate:"required_if=Type room,omitempty,datetime=2006-01-02"`
	Guests          int       `json:"guests,omitempty" validate:"required_if=Type room,omitempty,gt=0"`
	SpecialRequests string    `json:"specialRequests,omitempty" validate:"max=1000"`
}
