package models

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() Order {
	return Order{
		Name:             "Ana Pérez",
		Phone:            "+1 (571) 910-3088",
		PickupOrDelivery: "pickup",
		Items: []OrderItem{
			{ProductID: "flan", ProductName: "Flan", Quantity: 1, Price: 25},
		},
		Total: 25,
	}
}

func TestOrderValidation(t *testing.T) {
	require.NoError(t, RegisterValidators())

	t.Run("valid order", func(t *testing.T) {
		o := validOrder()
		assert.NoError(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("phone accepts digits and punctuation", func(t *testing.T) {
		o := validOrder()
		o.Phone = "571-910-3088"
		assert.NoError(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("phone rejects letters", func(t *testing.T) {
		o := validOrder()
		o.Phone = "call me maybe"
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("phone needs at least seven digits", func(t *testing.T) {
		o := validOrder()
		o.Phone = "12345 - 6"
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("name too short", func(t *testing.T) {
		o := validOrder()
		o.Name = "A"
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("bad email", func(t *testing.T) {
		o := validOrder()
		o.Email = "not-an-email"
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("fulfillment mode enum", func(t *testing.T) {
		o := validOrder()
		o.PickupOrDelivery = "teleport"
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("empty items", func(t *testing.T) {
		o := validOrder()
		o.Items = nil
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("zero quantity item", func(t *testing.T) {
		o := validOrder()
		o.Items[0].Quantity = 0
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("unknown size", func(t *testing.T) {
		o := validOrder()
		o.Items[0].Size = "gigante"
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})

	t.Run("negative total", func(t *testing.T) {
		o := validOrder()
		o.Total = -1
		assert.Error(t, binding.Validator.ValidateStruct(&o))
	})
}

func TestSanitizedStripsAntiAbuseFields(t *testing.T) {
	sub := OrderSubmission{
		Order:         validOrder(),
		Company:       "acme",
		FormStartedAt: 12345,
	}

	order := sub.Sanitized()
	assert.Equal(t, sub.Order, order)
}
