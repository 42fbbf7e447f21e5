// Package layout renders an invoice onto a single A4 page. Every
// element sits at a fixed coordinate measured in points from the
// top-left corner; only two offsets move content: the billing address
// can push the title block down, and each item row past the first
// pushes everything below the table down by one row height.
package layout

// A4 in points, portrait.
const (
	pageWidth  = 595.27
	pageHeight = 841.89
)

const (
	leftEdge   = 56.16 // table rules, sender line, footer left column
	textLeft   = 57.58 // address blocks, labels
	lineHeight = 12.0  // address block leading
	ruleWidth  = 0.75
)

// Logo box, top right.
const (
	logoX = 447.42
	logoY = 33.45
	logoW = 97.35
	logoH = 24.66
)

// Delivery address block.
const (
	deliveryLabelY = 91.75
	deliveryTextY  = 103.75
)

// Sender line with underline.
const (
	senderY     = 178.26
	underlineY  = 180.345
	underlineX2 = 269.15
)

// Billing address and title. The title normally sits at titleBaseY but
// yields when the billing block runs long; the resulting shift moves
// everything below it.
const (
	billingTopY       = 199.55
	billingFirstLineY = 208.55
	titleBaseY        = 243.63
	titleGapAfterAddr = 15.0
	titleBaselineDrop = 14.0
)

// Meta rows, offsets from the (possibly shifted) title position.
var metaRowOffsets = [5]float64{29.007, 40.346, 51.836, 62.966, 74.817}

const metaValueX = 168.164

// Items table.
const (
	orderLineY      = 365.0
	tableTopY       = 376.106
	tableHeaderH    = 18.0
	tableBottomY    = 394.248
	tableW          = 494.362
	tableRightEdge  = 550.52
	headerTextY     = 386.90
	firstRowY       = 395.0
	rowHeight       = 25.20
	rowBaselineDrop = 9.0

	colPosX     = 65.57
	colSKUX     = 93.01
	colArticleX = 175.22

	// Right edges for the numeric header cells and item values.
	headerQtyRight   = 438.06
	headerPriceRight = 507.36
	headerSumRight   = 548.70
	qtyRight         = 435.0
	priceRight       = 505.0
	sumRight         = 547.62
)

// Totals block. Row positions are fixed bases shifted by the title and
// item-count offsets; the two variants interleave the discount row.
const (
	totalsLabelX       = 332.81
	totalsBaselineDrop = 8.0
)

var totalsRows = [5]float64{425.33, 439.65, 453.95, 468.12, 487.97}

var totalsRowsDiscount = [6]float64{425.33, 439.65, 453.95, 468.12, 482.29, 501.97}

// Closing section.
const (
	thankYouY    = 550.24
	skuHeaderGap = 36.0
	skuLineStep  = 10.0

	footerY       = 781.29
	footerRightX  = 304.56
	footerLeading = 10.0

	copyrightY = 821.89
)

// nameMaxRunes bounds the article column; skuLineMaxRunes bounds the
// product name in the SKU appendix.
const (
	nameMaxRunes    = 45
	skuLineMaxRunes = 60
)

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
