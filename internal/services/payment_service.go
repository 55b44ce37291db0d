package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/pricing"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

const (
	DefaultCardDelay = 3 * time.Second
	DefaultUPIDelay  = 2 * time.Second

	// UPIPayee is the collect address shown for UPI payments.
	UPIPayee = "royalvenues@upi"
)

var (
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrInvalidAmount            = errors.New("payment amount must be greater than zero")
	ErrInvalidCard              = errors.New("invalid card details")
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type PaymentMethodInfo struct {
	ID          PaymentMethod `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Payee       string        `json:"payee,omitempty"`
}

// CardDetails is only checked for shape; nothing is charged.
type CardDetails struct {
	CardholderName string `json:"cardholderName" validate:"required,min=2,max=100"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	ExpiryDate     string `json:"expiryDate" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
}

type PaymentReceipt struct {
	TransactionID  string               `json:"transactionId"`
	Method         PaymentMethod        `json:"method"`
	Amount         float64              `json:"amount"`
	FormattedTotal string               `json:"formattedAmount"`
	Status         models.PaymentStatus `json:"status"`
	ProcessedAt    time.Time            `json:"processedAt"`
}

type PaymentService struct {
	delays map[PaymentMethod]time.Duration
	sleep  Sleeper
	now    func() time.Time
	logger *slog.Logger
}

func NewPaymentService(cardDelay, upiDelay time.Duration, logger *slog.Logger) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		delays: map[PaymentMethod]time.Duration{
			PaymentCard: cardDelay,
			PaymentUPI:  upiDelay,
		},
		sleep:  ContextSleep,
		now:    time.Now,
		logger: logger,
	}
}

// WithSleeper swaps the delay implementation, tests pass one that records and returns.
func (ps *PaymentService) WithSleeper(sleep Sleeper) *PaymentService {
	ps.sleep = sleep
	return ps
}

func (ps *PaymentService) Methods() []PaymentMethodInfo {
	return []PaymentMethodInfo{
		{ID: PaymentCard, Name: "Credit/Debit Card", Description: "Pay securely with any major card"},
		{ID: PaymentUPI, Name: "UPI Payment", Description: "Scan QR code or use UPI ID to pay", Payee: UPIPayee},
	}
}

// Process simulates a payment. It always succeeds once the method's delay
// has elapsed; cancelling ctx is the only way to abort it.
func (ps *PaymentService) Process(ctx context.Context, method PaymentMethod, amount float64, card *CardDetails) (*PaymentReceipt, error) {
	delay, ok := ps.delays[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, method)
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if method == PaymentCard {
		if err := ValidateCard(card); err != nil {
			return nil, err
		}
	}

	ps.logger.Debug("Processing simulated payment", "method", method, "amount", amount, "delay", delay)
	if err := ps.sleep(ctx, delay); err != nil {
		return nil, fmt.Errorf("payment aborted: %w", err)
	}

	receipt := &PaymentReceipt{
		TransactionID:  "sim_txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
		Method:         method,
		Amount:         amount,
		FormattedTotal: pricing.FormatPrice(amount),
		Status:         models.PaymentCompleted,
		ProcessedAt:    ps.now().UTC(),
	}
	ps.logger.Info("Payment completed", "transaction_id", receipt.TransactionID, "method", method, "amount", amount)
	return receipt, nil
}

// ValidateCard normalizes and checks card fields in place.
func ValidateCard(card *CardDetails) error {
	if card == nil {
		return fmt.Errorf("%w: card details are required", ErrInvalidCard)
	}
	if err := models.Validate.Struct(card); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	card.CardNumber = FormatCardNumber(card.CardNumber)
	card.ExpiryDate = FormatExpiry(card.ExpiryDate)
	card.CVV = SanitizeCVV(card.CVV)

	if len(digitsOnly(card.CardNumber)) != 16 {
		return fmt.Errorf("%w: card number must have 16 digits", ErrInvalidCard)
	}
	if len(card.ExpiryDate) != 5 {
		return fmt.Errorf("%w: expiry must be MM/YY", ErrInvalidCard)
	}
	if mm := card.ExpiryDate[:2]; mm < "01" || mm > "12" {
		return fmt.Errorf("%w: expiry month out of range", ErrInvalidCard)
	}
	if len(card.CVV) != 3 {
		return fmt.Errorf("%w: cvv must have 3 digits", ErrInvalidCard)
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber keeps at most 16 digits and groups them in fours.
func FormatCardNumber(value string) string {
	v := digitsOnly(value)
	if len(v) > 16 {
		v = v[:16]
	}
	var parts []string
	for i := 0; i < len(v); i += 4 {
		parts = append(parts, v[i:min(i+4, len(v))])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry turns typed digits into MM/YY.
func FormatExpiry(value string) string {
	v := digitsOnly(value)
	if len(v) < 2 {
		return v
	}
	if len(v) > 4 {
		v = v[:4]
	}
	return v[:2] + "/" + v[2:]
}

func SanitizeCVV(value string) string {
	v := digitsOnly(value)
	if len(v) > 3 {
		v = v[:3]
	}
	return v
}
