package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/plutov/paypal/v4"
	"go.uber.org/zap"
)

// ErrPaymentNotCompleted means the provider knows the transaction but it is
// not in a captured/active state.
var ErrPaymentNotCompleted = errors.New("payment not completed")

// PaymentCollector verifies the transaction the checkout widget created.
// The widget runs entirely in the browser; the backend only trusts a
// transaction id after the provider confirms it.
type PaymentCollector interface {
	// VerifyOneTime checks a one-time order capture and returns the
	// transaction id to store on the booking.
	VerifyOneTime(ctx context.Context, orderID string) (string, error)
	// VerifySubscription checks a recurring subscription and returns the
	// subscription id to store on the booking.
	VerifySubscription(ctx context.Context, subscriptionID string) (string, error)
}

// DisabledCollector stands in when no payment credentials are configured.
// Every verification fails, leaving bookings pending.
type DisabledCollector struct{}

func (DisabledCollector) VerifyOneTime(ctx context.Context, orderID string) (string, error) {
	return "", errors.New("payment collector not configured")
}

func (DisabledCollector) VerifySubscription(ctx context.Context, subscriptionID string) (string, error) {
	return "", errors.New("payment collector not configured")
}

// PayPalCollector verifies orders and subscriptions against the PayPal REST
// API.
type PayPalCollector struct {
	client *paypal.Client
	logger *zap.Logger
}

func NewPayPalCollector(logger *zap.Logger, clientID, secret string, live bool) (*PayPalCollector, error) {
	base := paypal.APIBaseSandBox
	if live {
		base = paypal.APIBaseLive
	}

	client, err := paypal.NewClient(clientID, secret, base)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}

	return &PayPalCollector{client: client, logger: logger}, nil
}

func (p *PayPalCollector) VerifyOneTime(ctx context.Context, orderID string) (string, error) {
	if _, err := p.client.GetAccessToken(ctx); err != nil {
		return "", fmt.Errorf("paypal auth: %w", err)
	}

	order, err := p.client.GetOrder(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("get order %s: %w", orderID, err)
	}

	if order.Status != "COMPLETED" {
		p.logger.Warn("order not completed",
			zap.String("order", orderID),
			zap.String("status", order.Status))
		return "", fmt.Errorf("%w: order status %s", ErrPaymentNotCompleted, order.Status)
	}

	return order.ID, nil
}

func (p *PayPalCollector) VerifySubscription(ctx context.Context, subscriptionID string) (string, error) {
	if _, err := p.client.GetAccessToken(ctx); err != nil {
		return "", fmt.Errorf("paypal auth: %w", err)
	}

	sub, err := p.client.GetSubscriptionDetails(ctx, subscriptionID)
	if err != nil {
		return "", fmt.Errorf("get subscription %s: %w", subscriptionID, err)
	}

	status := string(sub.SubscriptionStatus)
	if status != "ACTIVE" && status != "APPROVED" {
		p.logger.Warn("subscription not active",
			zap.String("subscription", subscriptionID),
			zap.String("status", status))
		return "", fmt.Errorf("%w: subscription status %s", ErrPaymentNotCompleted, status)
	}

	return sub.ID, nil
}
