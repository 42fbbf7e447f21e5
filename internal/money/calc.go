// Package money computes invoice totals and formats amounts for
// display. All arithmetic stays in full float64 precision; rounding to
// two decimal places happens only when an amount is formatted.
package money

import "github.com/mhessler/rechnung/internal/domain"

// Totals is the computed monetary breakdown of one invoice.
type Totals struct {
	// ItemGross is the tax-inclusive item subtotal before any discount.
	ItemGross float64
	// SubtotalNet is the tax-exclusive item subtotal before discount,
	// shown as the first totals row.
	SubtotalNet float64
	// ItemDiscount is the net promotion amount applied against items
	// after shipping was covered.
	ItemDiscount float64
	// ShippingGross is the shipping charge after discount allocation.
	ShippingGross float64
	ShippingNet   float64
	NetTotal      float64
	VATAmount     float64
	// GrandTotal is always recomputed as NetTotal + VATAmount, never
	// taken from an externally supplied gross figure.
	GrandTotal float64
}

// AllocateDiscount applies a promotion amount against the shipping
// charge first, reducing it as far as zero; whatever remains is
// returned as a discount against the item subtotal.
func AllocateDiscount(shippingGross, promotion float64) (newShipping, itemDiscount float64) {
	if promotion <= 0 {
		return shippingGross, 0
	}
	if promotion >= shippingGross {
		return 0, promotion - shippingGross
	}
	return shippingGross - promotion, 0
}

// ComputeTotals derives the full monetary breakdown for an order.
//
// For vatRate > 0 the net amounts are backed out of the gross figures
// independently for items and shipping (net = gross / (1 + rate)). A
// zero rate is the marketplace-facilitator case: items are summed at
// their tax-exclusive prices and no VAT is backed out. The promotion is
// a net amount; it reduces the net total without a VAT share of its own.
func ComputeTotals(items []domain.LineItem, shippingGross, promotion, vatRate float64) Totals {
	var itemGross float64
	for _, it := range items {
		if vatRate == 0 {
			itemGross += it.SubtotalNet()
		} else {
			itemGross += it.SubtotalGross()
		}
	}

	shippingGross, itemDiscount := AllocateDiscount(shippingGross, promotion)

	subtotalNet := itemGross
	if vatRate > 0 {
		subtotalNet = itemGross / (1 + vatRate)
	}
	itemNet := subtotalNet - itemDiscount
	itemVAT := itemGross - subtotalNet

	shippingNet := shippingGross
	if vatRate > 0 {
		shippingNet = shippingGross / (1 + vatRate)
	}
	shippingVAT := shippingGross - shippingNet

	netTotal := itemNet + shippingNet
	vatAmount := itemVAT + shippingVAT

	return Totals{
		ItemGross:     itemGross,
		SubtotalNet:   subtotalNet,
		ItemDiscount:  itemDiscount,
		ShippingGross: shippingGross,
		ShippingNet:   shippingNet,
		NetTotal:      netTotal,
		VATAmount:     vatAmount,
		GrandTotal:    netTotal + vatAmount,
	}
}
