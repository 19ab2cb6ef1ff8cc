package entities

// Submission is one validated warranty-claim request.
//
// It is ephemeral: constructed after input validation, discarded once the
// response is sent. The CRM is the durable record of submission content; the
// service itself only persists the claim counter.
//
//   - VIN is a 17-character code over {0-9, A-Z} minus I, O and Q.
//   - Category defaults to "Warranty" when the caller omits it.
//   - TraceRef is a per-request uuid used only for log correlation; it is
//     never presented to the caller as an authoritative identifier.

type Submission struct {
	VIN      string `json:"vin"`
	Email    string `json:"email"`
	Category string `json:"category"`
	TraceRef string `json:"trace_ref"`
}

const DefaultCategory = "Warranty"
