package ports

import "context"

// Notifier delivers e-mail notifications. Callers treat it as fire and forget:
// a failed notification never fails the operation that triggered it.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
