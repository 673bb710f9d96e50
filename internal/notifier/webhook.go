package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
)

// WebhookNotifier posts {email, otp} to a configured webhook URL. An empty
// or placeholder URL turns the notifier into a no-op success so the app
// works in local/demo setups with no delivery backend.
type WebhookNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewWebhookNotifier(webhookURL string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type otpPayload struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (n *WebhookNotifier) SendOTP(ctx context.Context, email, code string) error {
	if n.webhookURL == "" {
		logger.Debug("OTP webhook URL not configured, skipping delivery", "email", email)
		return nil
	}

	payload, err := json.Marshal(otpPayload{Email: email, OTP: code})
	if err != nil {
		return fmt.Errorf("failed to encode OTP payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build OTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.ExternalServiceCall("otp-webhook", "SendOTP", "email", email)
	resp, err := n.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("otp-webhook", "SendOTP", err)
		return fmt.Errorf("OTP delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("OTP delivery returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("otp-webhook", "SendOTP", err)
		return err
	}
	logger.ExternalServiceResult("otp-webhook", "SendOTP", nil)
	return nil
}
