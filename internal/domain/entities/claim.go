package entities

// EmailStatus represents the outcome of the confirmation email step.
//
// The confirmation email is best-effort: the claim itself is already committed
// before the email is attempted, so this status is informational only.

type EmailStatus string

const (
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
	EmailStatusSkipped EmailStatus = "skipped"
)

// Claim binds a validated submission to an allocated claim number.
//
// Invariants:
//   - A Claim is only constructed after the counter allocation succeeded.
//   - Once constructed it is immutable; the number is never reissued even if
//     the CRM or email side effects fail afterwards.

type Claim struct {
	Number     int64      `json:"number"`
	Submission Submission `json:"submission"`
}

// ClaimResult is what the intake flow hands back to the HTTP layer.
//
// ContactID and TicketID stay empty when the corresponding CRM call failed;
// the claim number is authoritative regardless.

type ClaimResult struct {
	ClaimNumber int64       `json:"claim_number"`
	ContactID   string      `json:"contact_id,omitempty"`
	TicketID    string      `json:"ticket_id,omitempty"`
	EmailStatus EmailStatus `json:"email_status"`
}
