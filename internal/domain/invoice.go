package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Invoice-related domain errors.
var (
	ErrNoItems         = &Error{Code: EINVALID, Field: "items", Message: "At least one item is required"}
	ErrInvoiceNotFound = &Error{Code: ENOTFOUND, Message: "Invoice not found"}
)

// LineItem is a single purchased position on an invoice.
//
// Unit prices are carried in both tax-exclusive (net) and tax-inclusive
// (gross) form; which one is displayed depends on the invoice's VAT rate
// (zero-rated invoices show exclusive prices).
type LineItem struct {
	ProductName    string
	SKU            string
	ASIN           string
	Quantity       int
	UnitPriceNet   float64
	UnitPriceGross float64
	// UnitCode is the UN/ECE unit code, e.g. "C62" for pieces.
	UnitCode string
}

// SubtotalNet returns quantity times the tax-exclusive unit price.
func (it LineItem) SubtotalNet() float64 {
	return it.UnitPriceNet * float64(it.Quantity)
}

// SubtotalGross returns quantity times the tax-inclusive unit price.
func (it LineItem) SubtotalGross() float64 {
	return it.UnitPriceGross * float64(it.Quantity)
}

// DisplayUnitPrice returns the unit price shown on the document.
// Zero-rated invoices (marketplace-facilitator case) show the
// tax-exclusive price; everything else shows the gross price.
func (it LineItem) DisplayUnitPrice(vatRate float64) float64 {
	if vatRate == 0 {
		return it.UnitPriceNet
	}
	return it.UnitPriceGross
}

// DisplaySubtotal returns the line total shown on the document,
// following the same zero-rated rule as DisplayUnitPrice.
func (it LineItem) DisplaySubtotal(vatRate float64) float64 {
	return it.DisplayUnitPrice(vatRate) * float64(it.Quantity)
}

// Buyer is the invoiced party.
type Buyer struct {
	Name string
	// Street may span multiple lines, separated by '\n'.
	Street     string
	PostalCode string
	City       string
	Country    string
	// VATID is the buyer's VAT identification number, empty for consumers.
	VATID string
}

// ContactFirstName returns the buyer's first name, used in the
// generated document filename.
func (b Buyer) ContactFirstName() string {
	fields := strings.Fields(b.Name)
	if len(fields) == 0 {
		return "Customer"
	}
	return fields[0]
}

// StreetLines splits the street into its non-empty lines.
func (b Buyer) StreetLines() []string {
	if b.Street == "" {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(b.Street, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Invoice is the fully resolved record handed to the layout engine.
// It is assembled once by the generator service and treated as
// read-only from then on; rendering never mutates it.
type Invoice struct {
	InvoiceNumber    string
	OrderNumber      string
	PaymentReference string

	Buyer Buyer
	Items []LineItem

	// ShippingGross is the shipping charge after any promotion was
	// allocated against it.
	ShippingGross float64
	// ItemDiscount is the net promotion amount applied against the
	// item subtotal (the part not absorbed by shipping).
	ItemDiscount float64

	// VATRate is a fraction, e.g. 0.19. Zero means the transaction is
	// zero-rated (marketplace facilitator remits the tax).
	VATRate float64

	// Computed totals, full precision; rounding happens at display time.
	SubtotalNet float64 // item net subtotal before discount
	NetTotal    float64
	VATAmount   float64
	GrandTotal  float64

	Currency string

	InvoiceDate  time.Time
	PurchaseDate time.Time
	DueDate      time.Time

	PaymentMeans string
	PaymentTerms string
}

// HasDiscount reports whether the invoice carries a promotion line.
func (inv *Invoice) HasDiscount() bool {
	return inv.ItemDiscount > 0
}

// OrderInput is the inbound order payload, before classification and
// totals computation. Validation happens here so that the calculator
// and the layout engine only ever see well-formed values.
type OrderInput struct {
	BuyerName    string `json:"buyer_name" validate:"required"`
	BuyerStreet  string `json:"buyer_street"`
	BuyerCity    string `json:"buyer_city"`
	BuyerPostal  string `json:"buyer_postal"`
	BuyerCountry string `json:"buyer_country" validate:"required"`
	BuyerVATID   string `json:"buyer_vat_id"`

	Items []ItemInput `json:"items" validate:"required,min=1,dive"`

	ShippingTotal     float64 `json:"shipping_total" validate:"gte=0"`
	PromotionDiscount float64 `json:"promotion_discount" validate:"gte=0"`

	// VATRate overrides classification when set. Nil means the rate is
	// resolved from the buyer country and the VAT rule set.
	VATRate *float64 `json:"vat_rate" validate:"omitempty,gte=0,lt=1"`

	Currency     string `json:"currency"`
	PaymentMeans string `json:"payment_means"`
	PaymentTerms string `json:"payment_terms"`
}

// ItemInput is a single order line as submitted by the caller.
// UnitPrice is tax-inclusive unless the resolved VAT rate is zero.
// Quantity defaults to 1 when the field is omitted; a submitted value,
// zero included, is kept as-is.
type ItemInput struct {
	ProductName string  `json:"product_name" validate:"required"`
	SKU         string  `json:"sku"`
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	UnitCode    string  `json:"unit_code"`
}

var validate = validator.New()

// jsonFieldName maps a validated struct field back to its wire name.
func jsonFieldName(namespace string) string {
	// Namespace looks like "OrderInput.Items[0].UnitPrice"; strip the
	// type prefix and lower-case the path segments to match json tags.
	parts := strings.SplitN(namespace, ".", 2)
	if len(parts) == 2 {
		namespace = parts[1]
	}
	replacer := strings.NewReplacer(
		"BuyerName", "buyer_name",
		"BuyerStreet", "buyer_street",
		"BuyerCity", "buyer_city",
		"BuyerPostal", "buyer_postal",
		"BuyerCountry", "buyer_country",
		"BuyerVATID", "buyer_vat_id",
		"Items", "items",
		"ShippingTotal", "shipping_total",
		"PromotionDiscount", "promotion_discount",
		"VATRate", "vat_rate",
		"ProductName", "product_name",
		"SKU", "sku",
		"Quantity", "quantity",
		"UnitPrice", "unit_price",
		"UnitCode", "unit_code",
	)
	return replacer.Replace(namespace)
}

// Validate checks the order input and returns a domain error naming the
// first offending field, or nil.
func (o *OrderInput) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return FieldError("order.validate", jsonFieldName(fe.StructNamespace()),
				"Invalid value for field %q", jsonFieldName(fe.StructNamespace()))
		}
		return WrapError(err, EINVALID, "order.validate", "Invalid order payload")
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	return nil
}
