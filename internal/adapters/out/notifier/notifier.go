// Package notifier provides order observers that announce status changes.
// Nothing is delivered to customers; every notification is a log record.
package notifier

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
)

// ConsoleNotifier writes one log line per status change, for the kitchen.
type ConsoleNotifier struct {
	logger *slog.Logger
}

// NewConsoleNotifier creates a console notifier.
func NewConsoleNotifier(logger *slog.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger.With("component", "console_notifier")}
}

// OrderChanged implements order.Observer.
func (n *ConsoleNotifier) OrderChanged(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	n.logger.Info("Order status changed",
		"order_id", o.ID().String(),
		"order_number", o.ID().Short(),
		"customer", o.CustomerName(),
		"status", o.Status().String(),
	)
	return nil
}

// EmailNotifier renders the e-mail a customer would receive and logs it.
type EmailNotifier struct {
	logger *slog.Logger
	sender string
}

// NewEmailNotifier creates an e-mail notifier that signs messages as sender.
func NewEmailNotifier(logger *slog.Logger, sender string) *EmailNotifier {
	return &EmailNotifier{
		logger: logger.With("component", "email_notifier"),
		sender: sender,
	}
}

// OrderChanged implements order.Observer.
func (n *EmailNotifier) OrderChanged(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	n.logger.Info("Email notification prepared",
		"order_id", o.ID().String(),
		"from", n.sender,
		"to", o.CustomerName(),
		"subject", Subject(o),
		"body", Body(o),
	)
	return nil
}

// Subject is the e-mail subject for the order's current status.
func Subject(o *order.Order) string {
	return fmt.Sprintf("Order #%s is %s", o.ID().Short(), o.Status())
}

// Body is the e-mail text for the order's current status.
func Body(o *order.Order) string {
	var next string
	switch o.Status() {
	case order.Received:
		next = "We have received your order."
	case order.Preparing:
		next = "Our kitchen is preparing your order."
	case order.Ready:
		next = "Your order is ready."
	case order.Delivered:
		next = "Your order has been delivered. Enjoy your meal!"
	}

	return fmt.Sprintf("Hello %s,\n\n%s\n\n%s", o.CustomerName(), next, o.Receipt())
}

var (
	_ order.Observer = (*ConsoleNotifier)(nil)
	_ order.Observer = (*EmailNotifier)(nil)
)
