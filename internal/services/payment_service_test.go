package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_Process(t *testing.T) {
	tests := []struct {
		name   string
		method PaymentMethod
		card   *CardDetails
		delay  time.Duration
	}{
		{"card", PaymentCard, validCard(), 3 * time.Second},
		{"upi", PaymentUPI, nil, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, sleeper := newTestPayments()

			receipt, err := ps.Process(context.Background(), tt.method, 55000, tt.card)
			require.NoError(t, err)

			assert.Equal(t, []time.Duration{tt.delay}, sleeper.Delays())
			assert.True(t, strings.HasPrefix(receipt.TransactionID, "sim_txn_"))
			assert.Len(t, receipt.TransactionID, len("sim_txn_")+16)
			assert.Equal(t, tt.method, receipt.Method)
			assert.Equal(t, 55000.0, receipt.Amount)
			assert.Equal(t, "₹55,000.00", receipt.FormattedTotal)
			assert.Equal(t, models.PaymentCompleted, receipt.Status)
			assert.Equal(t, testNow, receipt.ProcessedAt)
		})
	}
}

func TestPaymentService_Rejects(t *testing.T) {
	ps, sleeper := newTestPayments()
	ctx := context.Background()

	_, err := ps.Process(ctx, "cash", 100, nil)
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)

	_, err = ps.Process(ctx, PaymentUPI, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ps.Process(ctx, PaymentCard, 100, nil)
	assert.ErrorIs(t, err, ErrInvalidCard)

	assert.Empty(t, sleeper.Delays(), "rejected payments must not wait")
}

func TestPaymentService_ContextCancelled(t *testing.T) {
	ps := NewPaymentService(time.Hour, time.Hour, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ps.Process(ctx, PaymentUPI, 100, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContextSleep(t *testing.T) {
	assert.NoError(t, ContextSleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, ContextSleep(ctx, time.Minute), context.DeadlineExceeded)
}

func TestValidateCard(t *testing.T) {
	card := &CardDetails{
		CardholderName: "Asha Verma",
		CardNumber:     "4111-1111 1111-1111",
		ExpiryDate:     "12/28",
		CVV:            "123",
	}
	require.NoError(t, ValidateCard(card))
	assert.Equal(t, "4111 1111 1111 1111", card.CardNumber)
	assert.Equal(t, "12/28", card.ExpiryDate)

	tests := []struct {
		name   string
		mutate func(c *CardDetails)
	}{
		{"short number", func(c *CardDetails) { c.CardNumber = "4111 1111" }},
		{"bad month", func(c *CardDetails) { c.ExpiryDate = "1328" }},
		{"short expiry", func(c *CardDetails) { c.ExpiryDate = "12" }},
		{"short cvv", func(c *CardDetails) { c.CVV = "12" }},
		{"missing holder", func(c *CardDetails) { c.CardholderName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(c)
			assert.ErrorIs(t, ValidateCard(c), ErrInvalidCard)
		})
	}
}

func TestCardInputFormatting(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111999"))
	assert.Equal(t, "4111 11", FormatCardNumber("4111 11ab"))
	assert.Equal(t, "", FormatCardNumber("abcd"))

	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12/", FormatExpiry("12"))
	assert.Equal(t, "12/2", FormatExpiry("122"))
	assert.Equal(t, "12/28", FormatExpiry("12/2899"))

	assert.Equal(t, "123", SanitizeCVV("1a2b34"))
}

func TestPaymentService_Methods(t *testing.T) {
	ps, _ := newTestPayments()
	methods := ps.Methods()
	require.Len(t, methods, 2)
	assert.Equal(t, PaymentCard, methods[0].ID)
	assert.Equal(t, PaymentUPI, methods[1].ID)
	assert.Equal(t, UPIPayee, methods[1].Payee)
}
