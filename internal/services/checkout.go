package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	"github.com/rideon-labs/motorcycle-rental-platform/pkg/sendGrid"
	"github.com/rideon-labs/motorcycle-rental-platform/pkg/stripe"
)

type CheckoutService interface {
	Checkout(ctx context.Context, customerID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	carts        CartService
	stripeClient stripe.Client
	email        sendGrid.EmailService
	currency     string
}

func NewCheckoutService(carts CartService, stripeClient stripe.Client, email sendGrid.EmailService, currency string) CheckoutService {
	return &checkoutService{carts: carts, stripeClient: stripeClient, email: email, currency: currency}
}

// Checkout reprices the cart, opens a payment intent for the discounted total
// and sends the customer a booking summary. Payment capture and booking
// fulfilment happen elsewhere once the intent succeeds.
func (s *checkoutService) Checkout(ctx context.Context, customerID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	cart, err := s.carts.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, errors.BadRequestError("Cannot check out an empty cart")
	}

	// Stripe bills in the currency's minor unit.
	amountMinor := int64(math.Round(cart.DiscountedTotal * 100))

	intent, err := s.stripeClient.CreatePaymentIntent(
		amountMinor,
		s.currency,
		fmt.Sprintf("Motorcycle rental booking (%d item(s))", len(cart.Items)),
		customerID.String(),
	)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to initiate payment").WithError(err)
	}

	// The booking summary is best effort; a failed email must not orphan the
	// payment intent the client is about to confirm.
	if err := s.email.Send(ctx, bookingSummaryEmail(req.Email, cart)); err != nil {
		slog.WarnContext(ctx, "Failed to send booking summary email",
			slog.String("customerID", customerID.String()),
			slog.Any("error", err))
	}

	return &models.CheckoutResponse{
		Cart:            cart,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          cart.DiscountedTotal,
		Currency:        s.currency,
		Message:         "Payment initiated successfully.",
	}, nil
}

func bookingSummaryEmail(to string, cart *models.Cart) *models.EmailNotificationRequest {
	var b strings.Builder

	fmt.Fprintf(&b, "Your motorcycle rental booking summary:\n\n")

	for _, item := range cart.Items {
		fmt.Fprintf(&b, "- %d x motorcycle %s, %s from %s (%s) to %s (%s): %.2f\n",
			item.Quantity, item.MotorcycleID, item.Duration,
			item.PickupDate.Format("2006-01-02"), item.PickupTime,
			item.DropoffDate.Format("2006-01-02"), item.DropoffTime,
			item.RentAmount)
	}

	fmt.Fprintf(&b, "\nRent total: %.2f\n", cart.RentTotal)
	fmt.Fprintf(&b, "Tax: %.2f\n", cart.TotalTax)
	fmt.Fprintf(&b, "Security deposit (refundable): %.2f\n", cart.SecurityDepositTotal)
	fmt.Fprintf(&b, "Amount payable: %.2f\n", cart.DiscountedTotal)

	return &models.EmailNotificationRequest{
		To:      to,
		Subject: "Your motorcycle rental booking",
		Content: b.String(),
	}
}
