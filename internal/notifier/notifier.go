package notifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPhone signals that recipient phone number failed format check,
// delivery is not attempted in this case
var ErrInvalidPhone = errors.New("invalid phone number format, use international format like +12345678901")

// DeliveryError signals that the SMS provider failed to deliver the alert.
// The transaction log entry written before delivery is unaffected.
type DeliveryError struct {
	cause error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send SMS alert - %v", e.cause)
}

func (e *DeliveryError) Unwrap() error {
	return e.cause
}

// Provider is outbound SMS delivery boundary
type Provider interface {
	Send(ctx context.Context, to string, body string) error
}

// Notifier delivers suspicious transaction alerts to customers
type Notifier interface {
	Notify(ctx context.Context, phone string, customerName string, amount float64) error
}

type smsNotifier struct {
	provider Provider
}

// NewSMSNotifier builds Notifier delivering alerts through provider
func NewSMSNotifier(provider Provider) Notifier {
	return &smsNotifier{provider: provider}
}

// Notify validates the recipient phone and sends the fixed-template alert
// message. Exactly one provider call is made and only when validation passes.
func (n *smsNotifier) Notify(ctx context.Context, phone string, customerName string, amount float64) error {
	if !IsValidPhone(phone) {
		return ErrInvalidPhone
	}

	body := fmt.Sprintf(
		"Alert for %s: A suspicious transaction of $%s was detected.",
		customerName, strconv.FormatFloat(amount, 'f', -1, 64),
	)

	if err := n.provider.Send(ctx, phone, body); err != nil {
		return &DeliveryError{cause: err}
	}
	return nil
}
