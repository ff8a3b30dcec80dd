package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutForm struct {
	Mode     string   `json:"mode" validate:"required,delivery_mode"`
	Quantity int      `json:"quantity" validate:"omitempty,min=1,max=99"`
	Lat      *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat := 19.07

	require.NoError(t, v.Validate(&checkoutForm{Mode: "pickup", Lat: &lat}))
	require.NoError(t, v.Validate(&checkoutForm{Mode: "delivery", Quantity: 3}))

	bad := 123.0
	err := v.Validate(&checkoutForm{Mode: "drone", Quantity: 120, Lat: &bad})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "delivery_mode", fields["mode"])
	assert.Equal(t, "max=99", fields["quantity"])
	assert.Equal(t, "max=90", fields["latitude"])
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
