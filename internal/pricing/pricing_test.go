package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightCount(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
	}{
		{name: "five nights", checkIn: "2024-01-10", checkOut: "2024-01-15", expected: 5},
		{name: "same day", checkIn: "2024-01-10", checkOut: "2024-01-10", expected: 0},
		{name: "across month end", checkIn: "2024-01-30", checkOut: "2024-02-02", expected: 3},
		{name: "leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", expected: 2},
		{name: "reversed", checkIn: "2024-01-15", checkOut: "2024-01-10", expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := NightsBetween(tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, nights)
		})
	}
}

func TestNightCount_PartialDayRoundsUp(t *testing.T) {
	in := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 12, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, NightCount(in, out))
}

func TestNightsBetween_InvalidDate(t *testing.T) {
	_, err := NightsBetween("10/01/2024", "2024-01-15")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestTotals(t *testing.T) {
	assert.Equal(t, 8250.00, RoomTotal(2500, 3))
	assert.Equal(t, 55000.00, HallTotal(50000))
	assert.Equal(t, 0.0, RoomTotal(2500, 0))
	assert.Equal(t, 3500.0, ServiceCharge(35000))
}

func TestQuotes(t *testing.T) {
	q := RoomQuote(5000, 2)
	assert.Equal(t, Quote{BaseAmount: 10000, ServiceCharge: 1000, TotalAmount: 11000, Nights: 2}, q)

	h := HallQuote(75000)
	assert.Equal(t, 75000.0, h.BaseAmount)
	assert.Equal(t, 7500.0, h.ServiceCharge)
	assert.Equal(t, 82500.0, h.TotalAmount)
	assert.Zero(t, h.Nights)
}

func TestDateFloors(t *testing.T) {
	now := time.Date(2024, 3, 5, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-05", MinEventDate(now))
	assert.Equal(t, "2024-03-11", MinCheckOutDate("2024-03-10", now))
	assert.Equal(t, "2024-03-01", MinCheckOutDate("2024-02-29", now))
	assert.Equal(t, "2024-03-05", MinCheckOutDate("", now))
}

func TestMinEventDate_UsesLocalDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC).In(ist)
	assert.Equal(t, "2024-03-06", MinEventDate(now))
}

func TestValidateEventDate(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateEventDate("2024-03-05", now))
	assert.NoError(t, ValidateEventDate("2024-12-31", now))
	assert.ErrorIs(t, ValidateEventDate("2024-03-04", now), ErrPastDate)
	assert.ErrorIs(t, ValidateEventDate("tomorrow", now), ErrInvalidDate)
}

func TestValidateStay(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	nights, err := ValidateStay("2024-03-06", "2024-03-09", now)
	require.NoError(t, err)
	assert.Equal(t, 3, nights)

	_, err = ValidateStay("2024-03-06", "2024-03-06", now)
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)

	_, err = ValidateStay("2024-03-01", "2024-03-06", now)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestFormatPrice(t *testing.T) {
	tests := map[float64]string{
		0:          "₹0.00",
		999:        "₹999.00",
		2500:       "₹2,500.00",
		55000:      "₹55,000.00",
		100000:     "₹1,00,000.00",
		1234567.5:  "₹12,34,567.50",
		8250.004:   "₹8,250.00",
		-500:       "-₹500.00",
		12345678.9: "₹1,23,45,678.90",
	}

	for amount, expected := range tests {
		assert.Equal(t, expected, FormatPrice(amount), "amount %v", amount)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 Jan 2024", FormatDate(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "3 Nov 2025", FormatDate(time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)))
}
