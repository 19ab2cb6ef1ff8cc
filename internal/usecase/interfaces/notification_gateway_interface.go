package interfaces

import "context"

// INotificationGateway abstracts the external email provider used for the
// claim confirmation message.

type INotificationGateway interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}
