package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/mhessler/rechnung/internal/domain"
	"github.com/mhessler/rechnung/internal/service"
	"github.com/mhessler/rechnung/internal/telemetry"
)

// Request bodies beyond this size are rejected outright.
const maxRequestBody = 1 << 20

// InvoiceHandler exposes invoice generation and retrieval.
type InvoiceHandler struct {
	generator *service.Generator
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

func NewInvoiceHandler(generator *service.Generator, metrics *telemetry.Metrics, logger *slog.Logger) *InvoiceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceHandler{generator: generator, metrics: metrics, logger: logger}
}

// Generate handles POST /api/invoices.
func (h *InvoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input domain.OrderInput

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, h.logger, domain.Errorf(domain.EINVALID, "handler.Generate", "Invalid JSON payload"))
		return
	}

	result, err := h.generator.Generate(r.Context(), &input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Download handles GET /invoices/{filename}/download. The file is sent
// as an attachment.
func (h *InvoiceHandler) Download(w http.ResponseWriter, r *http.Request) {
	h.serveInvoice(w, r, true)
}

// Preview handles GET /invoices/{filename}/preview, serving the PDF
// inline for in-browser display.
func (h *InvoiceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	h.serveInvoice(w, r, false)
}

func (h *InvoiceHandler) serveInvoice(w http.ResponseWriter, r *http.Request, attachment bool) {
	filename := r.PathValue("filename")

	path, err := h.generator.InvoicePath(filename)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	mode := "preview"
	disposition := "inline"
	if attachment {
		mode = "download"
		disposition = `attachment; filename="` + filepath.Base(path) + `"`
	}
	h.metrics.Downloads.WithLabelValues(mode).Inc()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", disposition)
	http.ServeFile(w, r, path)
}

// Health handles GET /health.
func (h *InvoiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
