package response

import (
	"testing"

	"warranty_intake/internal/domain/entities"
)

func TestFromClaimResult(t *testing.T) {
	res := entities.ClaimResult{
		ClaimNumber: 100001,
		ContactID:   "contact-1",
		TicketID:    "ticket-1",
		EmailStatus: entities.EmailStatusSent,
	}

	out := FromClaimResult(res, "ref-1")
	if !out.OK {
		t.Fatalf("expected ok=true: %+v", out)
	}
	if out.ClaimNumber != 100001 || out.Ref != "ref-1" {
		t.Fatalf("unexpected claim fields: %+v", out)
	}
	if out.ContactID != "contact-1" || out.TicketID != "ticket-1" {
		t.Fatalf("unexpected ids: %+v", out)
	}
	if out.EmailStatus != "sent" || out.Message == "" {
		t.Fatalf("unexpected status fields: %+v", out)
	}
}

func TestFromValidationErrors(t *testing.T) {
	out := FromValidationErrors([]string{"a", "b"})
	if out.OK {
		t.Fatalf("expected ok=false")
	}
	if len(out.Errors) != 2 {
		t.Fatalf("expected both errors, got %v", out.Errors)
	}
}
