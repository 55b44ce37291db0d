// Package pricing holds the pure quote and calendar helpers shared by the
// booking store, the services and the HTTP layer.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// ServiceChargeRate is the flat surcharge added on top of the venue price.
	ServiceChargeRate = 0.10
	DateLayout        = "2006-01-02"
	CurrencySymbol    = "₹"
)

var (
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrPastDate              = errors.New("date is in the past")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must be after check-in")
)

// Quote is the price breakdown shown before payment.
type Quote struct {
	BaseAmount    float64 `json:"baseAmount"`
	ServiceCharge float64 `json:"serviceCharge"`
	TotalAmount   float64 `json:"totalAmount"`
	Nights        int     `json:"nights,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseDate parses a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// NightCount returns the ceiling of whole days elapsed between checkIn and
// checkOut. It is 0 for equal dates and negative when checkOut is earlier.
func NightCount(checkIn, checkOut time.Time) int {
	days := checkOut.Sub(checkIn).Hours() / 24
	return int(math.Ceil(days))
}

// NightsBetween is NightCount over YYYY-MM-DD strings.
func NightsBetween(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}
	return NightCount(in, out), nil
}

func ServiceCharge(base float64) float64 {
	return round2(base * ServiceChargeRate)
}

// HallTotal prices a hall for its single event day.
func HallTotal(price float64) float64 {
	return round2(price * (1 + ServiceChargeRate))
}

func RoomTotal(pricePerNight float64, nights int) float64 {
	return round2(pricePerNight * float64(nights) * (1 + ServiceChargeRate))
}

func HallQuote(price float64) Quote {
	return Quote{
		BaseAmount:    round2(price),
		ServiceCharge: ServiceCharge(price),
		TotalAmount:   HallTotal(price),
	}
}

func RoomQuote(pricePerNight float64, nights int) Quote {
	base := pricePerNight * float64(nights)
	return Quote{
		BaseAmount:    round2(base),
		ServiceCharge: ServiceCharge(base),
		TotalAmount:   RoomTotal(pricePerNight, nights),
		Nights:        nights,
	}
}

// MinEventDate is the earliest selectable event or check-in date: today in
// the location carried by now.
func MinEventDate(now time.Time) string {
	return now.Format(DateLayout)
}

// MinCheckOutDate is the day after checkIn, or today when checkIn is unset.
func MinCheckOutDate(checkIn string, now time.Time) string {
	in, err := ParseDate(checkIn)
	if err != nil {
		return MinEventDate(now)
	}
	return in.AddDate(0, 0, 1).Format(DateLayout)
}

// ValidateEventDate rejects malformed dates and dates before today.
func ValidateEventDate(date string, now time.Time) error {
	d, err := ParseDate(date)
	if err != nil {
		return err
	}
	if d.Format(DateLayout) < MinEventDate(now) {
		return fmt.Errorf("%w: %s", ErrPastDate, date)
	}
	return nil
}

// ValidateStay checks a check-in/check-out pair and returns the night count.
func ValidateStay(checkIn, checkOut string, now time.Time) (int, error) {
	if err := ValidateEventDate(checkIn, now); err != nil {
		return 0, err
	}
	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	if nights <= 0 {
		return 0, ErrCheckOutBeforeCheckIn
	}
	return nights, nil
}

// FormatPrice renders an amount as en-IN rupees, e.g. ₹1,00,000.00.
func FormatPrice(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := strconv.FormatInt(cents/100, 10)
	out := fmt.Sprintf("%s%s.%02d", CurrencySymbol, groupIndian(whole), cents%100)
	if amount < 0 && cents != 0 {
		return "-" + out
	}
	return out
}

// groupIndian inserts separators after the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatDate renders the en-IN short date used across the admin console.
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}
