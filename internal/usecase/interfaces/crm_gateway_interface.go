package interfaces

import "context"

// ICRMGateway abstracts the external CRM (contacts + tickets).
//
// The intake flow treats it as a black box: find-or-create a contact keyed by
// email, then open one ticket per accepted claim. Transport, auth and retry
// are the gateway's concern.

type ICRMGateway interface {
	// FindContactByEmail returns the contact id, or "" when no contact matches.
	FindContactByEmail(ctx context.Context, email string) (string, error)
	CreateContact(ctx context.Context, props map[string]string) (string, error)
	CreateTicket(ctx context.Context, props map[string]string) (string, error)
}
