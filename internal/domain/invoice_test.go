package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItem_DisplayPrices(t *testing.T) {
	it := LineItem{Quantity: 2, UnitPriceNet: 8.40, UnitPriceGross: 10.00}

	t.Run("taxed invoices show gross", func(t *testing.T) {
		assert.InDelta(t, 10.00, it.DisplayUnitPrice(0.19), 1e-9)
		assert.InDelta(t, 20.00, it.DisplaySubtotal(0.19), 1e-9)
	})

	t.Run("zero-rated invoices show net", func(t *testing.T) {
		assert.InDelta(t, 8.40, it.DisplayUnitPrice(0), 1e-9)
		assert.InDelta(t, 16.80, it.DisplaySubtotal(0), 1e-9)
	})
}

func TestBuyer_ContactFirstName(t *testing.T) {
	assert.Equal(t, "Jane", Buyer{Name: "Jane Doe"}.ContactFirstName())
	assert.Equal(t, "Jane", Buyer{Name: "Jane"}.ContactFirstName())
	assert.Equal(t, "Customer", Buyer{Name: ""}.ContactFirstName())
	assert.Equal(t, "Customer", Buyer{Name: "   "}.ContactFirstName())
}

func TestBuyer_StreetLines(t *testing.T) {
	b := Buyer{Street: "Musterstraße 12\nHinterhaus\n\n"}
	assert.Equal(t, []string{"Musterstraße 12", "Hinterhaus"}, b.StreetLines())

	assert.Empty(t, Buyer{}.StreetLines())
}

func TestOrderInput_Validate(t *testing.T) {
	one := 1
	valid := func() *OrderInput {
		return &OrderInput{
			BuyerName:    "Jane Doe",
			BuyerCountry: "Germany",
			Items: []ItemInput{
				{ProductName: "Handcreme", Quantity: &one, UnitPrice: 9.99},
			},
		}
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing buyer name", func(t *testing.T) {
		in := valid()
		in.BuyerName = ""
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, EINVALID, ErrorCode(err))
		assert.Equal(t, "buyer_name", ErrorField(err))
	})

	t.Run("missing country", func(t *testing.T) {
		in := valid()
		in.BuyerCountry = ""
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "buyer_country", ErrorField(err))
	})

	t.Run("no items", func(t *testing.T) {
		in := valid()
		in.Items = nil
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "items", ErrorField(err))
	})

	t.Run("negative shipping", func(t *testing.T) {
		in := valid()
		in.ShippingTotal = -1
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "shipping_total", ErrorField(err))
	})

	t.Run("rate out of range", func(t *testing.T) {
		in := valid()
		rate := 1.19
		in.VATRate = &rate
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "vat_rate", ErrorField(err))
	})

	t.Run("explicit zero rate is allowed", func(t *testing.T) {
		in := valid()
		rate := 0.0
		in.VATRate = &rate
		assert.NoError(t, in.Validate())
	})

	t.Run("omitted quantity is allowed", func(t *testing.T) {
		in := valid()
		in.Items[0].Quantity = nil
		assert.NoError(t, in.Validate())
	})

	t.Run("negative quantity", func(t *testing.T) {
		in := valid()
		neg := -1
		in.Items[0].Quantity = &neg
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "items[0].quantity", ErrorField(err))
	})

	t.Run("item without name", func(t *testing.T) {
		in := valid()
		in.Items[0].ProductName = ""
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, EINVALID, ErrorCode(err))
	})
}

func TestInvoice_HasDiscount(t *testing.T) {
	inv := &Invoice{}
	assert.False(t, inv.HasDiscount())
	inv.ItemDiscount = 2.50
	assert.True(t, inv.HasDiscount())
}
