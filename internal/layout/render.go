package layout

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/mhessler/rechnung/internal/domain"
	"github.com/mhessler/rechnung/internal/money"
	"github.com/mhessler/rechnung/internal/profile"
)

const dateFormat = "02.01.2006"

// Renderer draws invoices. It is stateless apart from the optional
// logo path and safe for concurrent use.
type Renderer struct {
	logoPath string
}

func NewRenderer(logoPath string) *Renderer {
	return &Renderer{logoPath: logoPath}
}

// page bundles the pdf handle with the cp1252 translator and the
// invoice currency so drawing helpers stay short.
type page struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	currency string
}

func (p *page) text(x, y float64, s string) {
	p.pdf.Text(x, y, p.tr(s))
}

func (p *page) textRight(right, y float64, s string) {
	t := p.tr(s)
	p.pdf.Text(right-p.pdf.GetStringWidth(t), y, t)
}

func (p *page) textCentered(center, y float64, s string) {
	t := p.tr(s)
	p.pdf.Text(center-p.pdf.GetStringWidth(t)/2, y, t)
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont("Helvetica", style, size)
}

func (p *page) price(amount float64) string {
	return money.FormatAmount(amount, p.currency)
}

// Render produces the finished PDF as a byte slice. Nothing is written
// to disk here so a failed render never leaves a partial file behind.
func (r *Renderer) Render(inv *domain.Invoice, prof profile.CompanyProfile) ([]byte, error) {
	const op = "layout.Renderer.Render"

	if len(inv.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineWidth(ruleWidth)

	p := &page{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		currency: inv.Currency,
	}

	r.drawLogo(p, prof)

	country := GermanCountryName(inv.Buyer.Country)
	r.drawDeliveryAddress(p, inv.Buyer, country)
	r.drawSenderLine(p, prof)

	layoutShift := r.drawBillingAndTitle(p, inv.Buyer, country)
	r.drawMeta(p, inv, layoutShift)

	itemShift := float64(len(inv.Items)-1) * rowHeight
	r.drawItemTable(p, inv, layoutShift)
	r.drawTotals(p, inv, layoutShift+itemShift)
	r.drawClosing(p, inv, layoutShift+itemShift)
	r.drawFooter(p, inv, prof)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "Failed to render invoice document")
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawLogo(p *page, prof profile.CompanyProfile) {
	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			p.pdf.ImageOptions(r.logoPath, logoX, logoY, logoW, logoH, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			return
		}
	}
	// No logo file: print the first word of the company name instead.
	p.font("B", 16)
	p.text(logoX+10, logoY+logoH-8, strings.ToUpper(truncateRunes(prof.Name, 10)))
}

func (r *Renderer) drawDeliveryAddress(p *page, b domain.Buyer, country string) {
	p.font("", 7)
	p.text(textLeft, deliveryLabelY, "Lieferadresse:")

	p.font("", 10)
	y := deliveryTextY
	for _, line := range addressLines(b, country) {
		p.text(textLeft, y, line)
		y += lineHeight
	}
}

// addressLines is the common body of the delivery and billing blocks:
// name, street lines, postal code with city, country in upper case.
func addressLines(b domain.Buyer, country string) []string {
	lines := []string{b.Name}
	lines = append(lines, b.StreetLines()...)
	lines = append(lines, fmt.Sprintf("%s %s", b.PostalCode, b.City))
	lines = append(lines, strings.ToUpper(country))
	return lines
}

func (r *Renderer) drawSenderLine(p *page, prof profile.CompanyProfile) {
	p.font("", 6)
	p.text(leftEdge, senderY, "Abs.: "+prof.AddressLine)
	p.pdf.Line(leftEdge, underlineY, underlineX2, underlineY)
}

// drawBillingAndTitle renders the billing address and the "Rechnung"
// title, returning the downward shift the rest of the page inherits
// when the address block runs past the title's default position.
func (r *Renderer) drawBillingAndTitle(p *page, b domain.Buyer, country string) float64 {
	lines := addressLines(b, country)
	if b.VATID != "" {
		lines = append(lines, "USt-IdNr: "+b.VATID)
	}

	p.font("", 10)
	y := billingFirstLineY
	for _, line := range lines {
		p.text(textLeft, y, line)
		y += lineHeight
	}

	titleY := titleBaseY
	if required := billingTopY + float64(len(lines))*lineHeight + titleGapAfterAddr; required > titleY {
		titleY = required
	}

	p.font("B", 18)
	p.text(textLeft, titleY+titleBaselineDrop, "Rechnung")

	return titleY - titleBaseY
}

func (r *Renderer) drawMeta(p *page, inv *domain.Invoice, shift float64) {
	titleY := titleBaseY + shift

	rows := [5][2]string{
		{"Rechnung", inv.InvoiceNumber},
		{"Rechnungsdatum", inv.InvoiceDate.Format(dateFormat)},
		{"Bestelldatum", inv.PurchaseDate.Format(dateFormat)},
		{"Fälligkeitsdatum", inv.DueDate.Format(dateFormat)},
		{"Zahlart", inv.PaymentMeans},
	}

	p.font("", 9)
	for i, row := range rows {
		y := titleY + metaRowOffsets[i]
		p.text(textLeft, y, row[0])
		p.text(metaValueX, y, row[1])
	}

	p.text(leftEdge, orderLineY+shift, "Bestellnummer: "+inv.OrderNumber)
}

func (r *Renderer) drawItemTable(p *page, inv *domain.Invoice, shift float64) {
	p.pdf.SetFillColor(230, 230, 230)
	p.pdf.Rect(leftEdge, tableTopY+shift, tableW, tableHeaderH, "F")
	p.pdf.Line(leftEdge, tableTopY+shift, tableRightEdge, tableTopY+shift)
	p.pdf.Line(leftEdge, tableBottomY+shift, tableRightEdge, tableBottomY+shift)

	p.font("", 9)
	hy := headerTextY + shift
	p.text(colPosX, hy, "Pos")
	p.text(colSKUX, hy, "Nummer")
	p.text(colArticleX, hy, "Artikel")
	p.textRight(headerQtyRight, hy, "Anzahl")
	p.textRight(headerPriceRight, hy, "Preis")
	p.textRight(headerSumRight, hy, "Summe")

	rowTop := firstRowY + shift
	for i, it := range inv.Items {
		y := rowTop + rowBaselineDrop
		p.text(colPosX, y, fmt.Sprintf("%d", i+1))
		p.text(colSKUX, y, it.SKU)
		p.text(colArticleX, y, truncateRunes(it.ProductName, nameMaxRunes))
		p.textRight(qtyRight, y, money.FormatQuantity(it.Quantity))
		p.textRight(priceRight, y, p.price(it.DisplayUnitPrice(inv.VATRate)))
		p.textRight(sumRight, y, p.price(it.DisplaySubtotal(inv.VATRate)))

		p.pdf.Line(leftEdge, rowTop+rowHeight, tableRightEdge, rowTop+rowHeight)
		rowTop += rowHeight
	}
}

func (r *Renderer) drawTotals(p *page, inv *domain.Invoice, shift float64) {
	row := func(baseY float64, label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		p.font(style, 9)
		y := baseY + shift + totalsBaselineDrop
		p.text(totalsLabelX, y, label)
		p.textRight(sumRight, y, value)
	}

	vatLabel := fmt.Sprintf("Umsatzsteuer (%s%%)", money.FormatRate(inv.VATRate))

	if inv.HasDiscount() {
		row(totalsRowsDiscount[0], "Zwischensumme (netto)", p.price(inv.SubtotalNet), false)
		row(totalsRowsDiscount[1], "Rabatt", "-"+p.price(inv.ItemDiscount), false)
		row(totalsRowsDiscount[2], "Versand", p.price(inv.ShippingGross), false)
		row(totalsRowsDiscount[3], "Gesamt netto", p.price(inv.NetTotal), false)
		row(totalsRowsDiscount[4], vatLabel, p.price(inv.VATAmount), false)
		row(totalsRowsDiscount[5], "Gesamtsumme", p.price(inv.GrandTotal), true)
		return
	}

	row(totalsRows[0], "Zwischensumme (netto)", p.price(inv.SubtotalNet), false)
	row(totalsRows[1], "Versand", p.price(inv.ShippingGross), false)
	row(totalsRows[2], "Gesamt netto", p.price(inv.NetTotal), false)
	row(totalsRows[3], vatLabel, p.price(inv.VATAmount), false)
	row(totalsRows[4], "Gesamtsumme", p.price(inv.GrandTotal), true)
}

func (r *Renderer) drawClosing(p *page, inv *domain.Invoice, shift float64) {
	ty := thankYouY + shift
	p.font("", 8)
	p.text(textLeft, ty, "Vielen Dank für Ihre Bestellung!")
	p.text(textLeft, ty+lineHeight, "Thank you for your order!")

	var withSKU []domain.LineItem
	for _, it := range inv.Items {
		if it.SKU != "" {
			withSKU = append(withSKU, it)
		}
	}
	if len(withSKU) == 0 {
		return
	}

	headerY := ty + skuHeaderGap
	p.font("B", 8)
	p.text(textLeft, headerY, "Artikelnummern (SKU):")

	p.font("", 8)
	y := headerY + lineHeight
	for _, it := range withSKU {
		p.text(textLeft, y, fmt.Sprintf("%s - %s", it.SKU, truncateRunes(it.ProductName, skuLineMaxRunes)))
		y += skuLineStep
	}
}

func (r *Renderer) drawFooter(p *page, inv *domain.Invoice, prof profile.CompanyProfile) {
	left := []string{
		prof.Control,
		"Bankverbindung: " + prof.Bank,
		"IBAN: " + prof.IBAN,
	}
	if prof.BIC != "" {
		left = append(left, "BIC: "+prof.BIC)
	}
	if inv.PaymentTerms != "" {
		left = append(left, "Zahlungsbedingungen: "+inv.PaymentTerms)
	}
	if inv.PaymentReference != "" {
		left = append(left, "Verwendungszweck: "+inv.PaymentReference)
	}

	right := []string{
		prof.Court,
		"UID: " + prof.UID,
	}
	if prof.VATID != "" {
		right = append(right, "USt-IdNr: "+prof.VATID)
	}
	if prof.Registration != "" {
		right = append(right, "Registrierung: "+prof.Registration)
	}
	if prof.CEO != "" {
		right = append(right, "Geschäftsführung: "+prof.CEO)
	}

	p.font("", 8)
	for i, line := range left {
		p.text(leftEdge, footerY+float64(i)*footerLeading, line)
	}
	for i, line := range right {
		p.text(footerRightX, footerY+float64(i)*footerLeading, line)
	}

	p.font("", 7)
	p.pdf.SetTextColor(128, 128, 128)
	p.textCentered(pageWidth/2, copyrightY,
		fmt.Sprintf("© %d %s", inv.InvoiceDate.Year(), prof.Name))
	p.pdf.SetTextColor(0, 0, 0)
}
