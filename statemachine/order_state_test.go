package statemachine

import (
	"testing"

	"food-delivery-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderTransitions(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		ok       bool
	}{
		{models.OrderPending, models.OrderConfirmed, true},
		{models.OrderConfirmed, models.OrderDelivered, true},
		{models.OrderPending, models.OrderDelivered, true}, // delivery does not require payment
		{models.OrderConfirmed, models.OrderPending, false},
		{models.OrderDelivered, models.OrderConfirmed, false},
		{models.OrderDelivered, models.OrderDelivered, false},
	}
	for _, tt := range tests {
		err := CanOrderTransition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestPaymentTransitions(t *testing.T) {
	assert.NoError(t, CanPaymentTransition(models.PaymentPending, models.PaymentPaid))
	assert.Error(t, CanPaymentTransition(models.PaymentPaid, models.PaymentPending))
	assert.Error(t, CanPaymentTransition(models.PaymentPaid, models.PaymentPaid))
}

func TestDeliveryTransitions(t *testing.T) {
	assert.NoError(t, CanDeliveryTransition(models.DeliveryAssigned, models.DeliveryDelivered))
	assert.Error(t, CanDeliveryTransition(models.DeliveryDelivered, models.DeliveryAssigned))
}

func TestTerminalStates(t *testing.T) {
	assert.False(t, IsTerminalOrder(models.OrderPending))
	assert.False(t, IsTerminalOrder(models.OrderConfirmed))
	assert.True(t, IsTerminalOrder(models.OrderDelivered))
}
