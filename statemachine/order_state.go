package statemachine

import (
	"errors"

	"food-delivery-backend/models"
)

// The order lifecycle is three one-directional machines that advance
// together: the order itself, its payment, and its delivery. There is no
// cancellation or refund path; delivered/paid are terminal.
var orderTransitions = map[models.OrderStatus]models.OrderStatus{
	models.OrderPending:   models.OrderConfirmed,
	models.OrderConfirmed: models.OrderDelivered,
}

var paymentTransitions = map[models.PaymentStatus]models.PaymentStatus{
	models.PaymentPending: models.PaymentPaid,
}

var deliveryTransitions = map[models.DeliveryStatus]models.DeliveryStatus{
	models.DeliveryAssigned: models.DeliveryDelivered,
}

var ErrInvalidTransition = errors.New("invalid status transition")

// CanOrderTransition checks whether an order may move between two statuses.
// Delivered is reachable from both pending and confirmed: marking an order
// delivered does not require that it was paid first.
func CanOrderTransition(from, to models.OrderStatus) error {
	if to == models.OrderDelivered && from != models.OrderDelivered {
		return nil
	}
	if orderTransitions[from] == to {
		return nil
	}
	return ErrInvalidTransition
}

func CanPaymentTransition(from, to models.PaymentStatus) error {
	if paymentTransitions[from] == to {
		return nil
	}
	return ErrInvalidTransition
}

func CanDeliveryTransition(from, to models.DeliveryStatus) error {
	if deliveryTransitions[from] == to {
		return nil
	}
	return ErrInvalidTransition
}

// IsTerminalOrder reports whether no further order transition exists.
func IsTerminalOrder(s models.OrderStatus) bool {
	_, ok := orderTransitions[s]
	return !ok
}
