// Package profile stores the seller's company details used on every
// invoice footer and sender line. The profile lives in a small JSON
// file next to the process so it can be edited through the settings
// endpoint and survives restarts.
package profile

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhessler/rechnung/internal/domain"
)

// CompanyProfile holds the seller identity printed on invoices. The
// optional fields render as extra footer lines only when set.
type CompanyProfile struct {
	Name         string `json:"name" validate:"required"`
	AddressLine  string `json:"address_line" validate:"required"`
	Court        string `json:"court" validate:"required"`
	UID          string `json:"uid" validate:"required"`
	CEO          string `json:"ceo"`
	Control      string `json:"control"`
	Bank         string `json:"bank" validate:"required"`
	IBAN         string `json:"iban" validate:"required"`
	BIC          string `json:"bic"`
	Registration string `json:"company_registration"`
	VATID        string `json:"vat_id"`
}

// DefaultProfile returns placeholder company details. They make the
// generated PDF structurally complete for a first run but are meant to
// be replaced through the settings endpoint.
func DefaultProfile() CompanyProfile {
	return CompanyProfile{
		Name:         "Your Company Name",
		AddressLine:  "Your Company Address",
		Court:        "Registration Details",
		UID:          "Tax/VAT ID",
		Control:      "Additional Info",
		Bank:         "Bank Name",
		IBAN:         "IBAN Number",
		BIC:          "BIC/SWIFT Code",
		Registration: "Company Registration Number",
		VATID:        "VAT ID Number",
	}
}

// Validate reports the first missing required field.
func (p CompanyProfile) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"address_line", p.AddressLine},
		{"court", p.Court},
		{"uid", p.UID},
		{"bank", p.Bank},
		{"iban", p.IBAN},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.FieldError("profile.Validate", r.field, "%s is required", r.field)
		}
	}
	return nil
}

// Store reads and writes the company profile JSON file.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load returns the stored profile, falling back to the defaults when
// the file is missing or unreadable. A corrupt file is logged, not
// fatal, so invoice generation keeps working.
func (s *Store) Load() CompanyProfile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read company profile, using defaults",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
		}
		return DefaultProfile()
	}

	var p CompanyProfile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("failed to parse company profile, using defaults",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return DefaultProfile()
	}
	return p
}

// Save validates and persists the profile with indented JSON so the
// file stays hand-editable.
func (s *Store) Save(p CompanyProfile) error {
	const op = "profile.Store.Save"

	if err := p.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "Failed to encode company profile")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "Failed to create settings directory")
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "Failed to write company profile")
	}
	return nil
}
