package request

import (
	"regexp"
	"strings"

	"warranty_intake/internal/domain/entities"
)

// VINs are 17 characters over digits and capital letters, excluding I, O and Q
// (ISO 3779 transliteration rules).
var (
	vinPattern   = regexp.MustCompile(`^[0-9A-HJ-NPR-Z]{17}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const (
	MsgInvalidVIN   = "vin must be 17 characters using digits and capital letters excluding I, O and Q"
	MsgInvalidEmail = "email must be a valid email address"
)

// ClaimRequest is the inbound submission payload. It binds from either a JSON
// body or its form-encoded equivalent; gin picks the binding by content type,
// so one canonical value exists before any business logic runs.
type ClaimRequest struct {
	VIN      string `json:"vin" form:"vin"`
	Email    string `json:"email" form:"email"`
	Category string `json:"category" form:"category"`
}

func (r ClaimRequest) ResolveVIN() string {
	return strings.ToUpper(strings.TrimSpace(r.VIN))
}

func (r ClaimRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

func (r ClaimRequest) ResolveCategory() string {
	if v := strings.TrimSpace(r.Category); v != "" {
		return v
	}
	return entities.DefaultCategory
}

// Validate returns every failed field check at once so the caller sees the
// full list in a single response.
func (r ClaimRequest) Validate() []string {
	var errs []string
	if !vinPattern.MatchString(r.ResolveVIN()) {
		errs = append(errs, MsgInvalidVIN)
	}
	if !emailPattern.MatchString(r.ResolveEmail()) {
		errs = append(errs, MsgInvalidEmail)
	}
	return errs
}

// ToSubmission builds the canonical submission; traceRef is generated by the
// handler, one per request.
func (r ClaimRequest) ToSubmission(traceRef string) entities.Submission {
	return entities.Submission{
		VIN:      r.ResolveVIN(),
		Email:    r.ResolveEmail(),
		Category: r.ResolveCategory(),
		TraceRef: traceRef,
	}
}
