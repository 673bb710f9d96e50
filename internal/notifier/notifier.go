// Package notifier delivers one-time passcodes to users. Two channels are
// provided: an outbound webhook (the default) and SendGrid email; the
// channel is selected by configuration at startup.
package notifier

import "context"

// Notifier delivers a passcode to an email address. A nil error means the
// channel accepted the message, not that the user received it.
type Notifier interface {
	SendOTP(ctx context.Context, email, code string) error
}
