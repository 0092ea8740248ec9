// Package mail delivers outbound messages for the account service.
// The only current use is sending password-reset codes; the Sender contract
// keeps the delivery mechanism swappable.
package mail

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/sender_mock.go -package=mock

// Sender delivers a single plain-text message to one recipient.
// Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
