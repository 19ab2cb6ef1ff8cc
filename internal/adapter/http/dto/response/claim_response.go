package response

import "warranty_intake/internal/domain/entities"

type ClaimResponse struct {
	OK          bool   `json:"ok"`
	ClaimNumber int64  `json:"claimNumber"`
	Ref         string `json:"ref"`
	ContactID   string `json:"contactId"`
	TicketID    string `json:"ticketId"`
	EmailStatus string `json:"emailStatus"`
	Message     string `json:"message"`
}

type ClaimErrorResponse struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}

func FromClaimResult(res entities.ClaimResult, traceRef string) ClaimResponse {
	return ClaimResponse{
		OK:          true,
		ClaimNumber: res.ClaimNumber,
		Ref:         traceRef,
		ContactID:   res.ContactID,
		TicketID:    res.TicketID,
		EmailStatus: string(res.EmailStatus),
		Message:     "Warranty claim received",
	}
}

func FromValidationErrors(errs []string) ClaimErrorResponse {
	return ClaimErrorResponse{OK: false, Errors: errs}
}
