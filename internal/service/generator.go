// Package service assembles orders into rendered invoices: input
// validation, VAT resolution, totals, document rendering and file
// placement all happen here so the HTTP layer stays thin.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mhessler/rechnung/internal/domain"
	"github.com/mhessler/rechnung/internal/layout"
	"github.com/mhessler/rechnung/internal/money"
	"github.com/mhessler/rechnung/internal/profile"
	"github.com/mhessler/rechnung/internal/telemetry"
	"github.com/mhessler/rechnung/internal/vat"
)

// Request defaults applied when the caller omits optional fields.
const (
	defaultCurrency     = "€"
	defaultPaymentMeans = "Credit transfer"
	defaultPaymentTerms = "Net 30"
	defaultUnitCode     = "C62"
)

// GenerateResult is returned to the caller after a successful run.
type GenerateResult struct {
	InvoiceNumber string  `json:"invoice_id"`
	Filename      string  `json:"filename"`
	DownloadURL   string  `json:"download_url"`
	PreviewURL    string  `json:"preview_url"`
	VATRate       float64 `json:"vat_rate"`
	GrandTotal    float64 `json:"grand_total"`
}

// Generator turns validated order input into a stored PDF invoice.
type Generator struct {
	rules     *vat.Loader
	renderer  *layout.Renderer
	profiles  *profile.Store
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	outputDir string

	now func() time.Time
}

func NewGenerator(rules *vat.Loader, renderer *layout.Renderer, profiles *profile.Store, metrics *telemetry.Metrics, logger *slog.Logger, outputDir string) *Generator {
	return &Generator{
		rules:     rules,
		renderer:  renderer,
		profiles:  profiles,
		metrics:   metrics,
		logger:    logger,
		outputDir: outputDir,
		now:       time.Now,
	}
}

// Generate validates the order, resolves the VAT rate, computes totals
// and writes the rendered PDF into the output directory.
func (g *Generator) Generate(ctx context.Context, input *domain.OrderInput) (*GenerateResult, error) {
	const op = "service.Generator.Generate"

	if err := input.Validate(); err != nil {
		return nil, err
	}

	items := buildLineItems(input.Items)
	now := g.now()

	rate, kind := g.resolveRate(input, items)
	totals := money.ComputeTotals(items, input.ShippingTotal, input.PromotionDiscount, rate)

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	paymentMeans := input.PaymentMeans
	if paymentMeans == "" {
		paymentMeans = defaultPaymentMeans
	}
	paymentTerms := input.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = defaultPaymentTerms
	}

	number := invoiceNumber(now)

	inv := &domain.Invoice{
		InvoiceNumber:    number,
		OrderNumber:      number,
		PaymentReference: number,
		Buyer: domain.Buyer{
			Name:       input.BuyerName,
			Street:     input.BuyerStreet,
			PostalCode: input.BuyerPostal,
			City:       input.BuyerCity,
			Country:    input.BuyerCountry,
			VATID:      input.BuyerVATID,
		},
		Items:         items,
		ShippingGross: totals.ShippingGross,
		ItemDiscount:  totals.ItemDiscount,
		VATRate:       rate,
		SubtotalNet:   totals.SubtotalNet,
		NetTotal:      totals.NetTotal,
		VATAmount:     totals.VATAmount,
		GrandTotal:    totals.GrandTotal,
		Currency:      currency,
		InvoiceDate:   now,
		PurchaseDate:  now,
		DueDate:       dueDate(now, paymentTerms),
		PaymentMeans:  paymentMeans,
		PaymentTerms:  paymentTerms,
	}

	prof := g.profiles.Load()

	start := time.Now()
	pdf, err := g.renderer.Render(inv, prof)
	if err != nil {
		g.metrics.RenderFailed.Inc()
		return nil, err
	}
	g.metrics.RenderDuration.Observe(time.Since(start).Seconds())

	filename := invoiceFilename(now, input.BuyerCountry, inv.Buyer.ContactFirstName())
	if err := g.writeInvoice(filename, pdf); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "Failed to store invoice document")
	}

	g.metrics.InvoicesGenerated.WithLabelValues(layout.CountryCode(input.BuyerCountry), kind).Inc()
	g.metrics.InvoiceValue.WithLabelValues(currency).Observe(inv.GrandTotal)

	g.logger.InfoContext(ctx, "invoice generated",
		slog.String("invoice_number", number),
		slog.String("filename", filename),
		slog.String("country", input.BuyerCountry),
		slog.Float64("vat_rate", rate),
		slog.Float64("grand_total", inv.GrandTotal))

	return &GenerateResult{
		InvoiceNumber: number,
		Filename:      filename,
		DownloadURL:   "/invoices/" + filename + "/download",
		PreviewURL:    "/invoices/" + filename + "/preview",
		VATRate:       rate,
		GrandTotal:    inv.GrandTotal,
	}, nil
}

// resolveRate returns the VAT rate for the order: an explicit request
// rate wins, otherwise the items are classified and the destination
// country decides the numeric rate.
func (g *Generator) resolveRate(input *domain.OrderInput, items []domain.LineItem) (float64, string) {
	if input.VATRate != nil {
		return *input.VATRate, "explicit"
	}

	kind := vat.Classify(items, g.rules.RuleSet())
	g.metrics.Classifications.WithLabelValues(kind.String()).Inc()
	return vat.RateFor(input.BuyerCountry, kind), kind.String()
}

// InvoicePath resolves a previously generated invoice file. The
// filename is reduced to its base so callers cannot escape the output
// directory.
func (g *Generator) InvoicePath(filename string) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || !strings.HasSuffix(name, ".pdf") {
		return "", domain.ErrInvoiceNotFound
	}

	path := filepath.Join(g.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrInvoiceNotFound
	}
	return path, nil
}

func (g *Generator) writeInvoice(filename string, pdf []byte) error {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(filepath.Join(g.outputDir, filename), pdf, 0o644)
}

func buildLineItems(inputs []domain.ItemInput) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(inputs))
	for i, in := range inputs {
		qty := 1
		if in.Quantity != nil {
			qty = *in.Quantity
		}
		sku := in.SKU
		if sku == "" {
			sku = fmt.Sprintf("SKU-%d", i+1)
		}
		unitCode := in.UnitCode
		if unitCode == "" {
			unitCode = defaultUnitCode
		}
		items = append(items, domain.LineItem{
			ProductName:    in.ProductName,
			SKU:            sku,
			Quantity:       qty,
			UnitPriceNet:   in.UnitPrice,
			UnitPriceGross: in.UnitPrice,
			UnitCode:       unitCode,
		})
	}
	return items
}

// invoiceNumber builds identifiers like INV-20260301-9F2B41C7.
func invoiceNumber(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("INV-%s-%X", now.Format("20060102"), id[:4])
}

// invoiceFilename builds names like 01_DE_Jane.pdf from the generation
// day, the destination country code and the buyer's first name.
func invoiceFilename(now time.Time, country, firstName string) string {
	return fmt.Sprintf("%s_%s_%s.pdf", now.Format("02"), layout.CountryCode(country), firstName)
}

// dueDate derives the payment deadline from free-form payment terms.
// "Immediate" means due on the invoice date; otherwise the first known
// day count named in the terms wins, defaulting to 30 days.
func dueDate(invoiceDate time.Time, terms string) time.Time {
	days := 30
	switch {
	case strings.Contains(terms, "Immediate"):
		days = 0
	case strings.Contains(terms, "7"):
		days = 7
	case strings.Contains(terms, "14"):
		days = 14
	case strings.Contains(terms, "30"):
		days = 30
	case strings.Contains(terms, "60"):
		days = 60
	case strings.Contains(terms, "90"):
		days = 90
	}
	return invoiceDate.AddDate(0, 0, days)
}
