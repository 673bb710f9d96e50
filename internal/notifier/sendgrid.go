package notifier

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
)

// SendGridNotifier delivers passcodes by email through the SendGrid API.
type SendGridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *SendGridNotifier) SendOTP(ctx context.Context, email, code string) error {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail("", email)

	subject := "Your verification code"
	plainText := fmt.Sprintf("Your one-time verification code is %s. It expires in a few minutes.", code)
	htmlContent := fmt.Sprintf("<p>Your one-time verification code is <strong>%s</strong>.</p><p>It expires in a few minutes.</p>", code)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "SendOTP", "email", email)
	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "SendOTP", err)
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d", response.StatusCode)
		logger.ExternalServiceResult("sendgrid", "SendOTP", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "SendOTP", nil)
	return nil
}
