// Package hrclient talks to the remote HR webhook that serves raw referral
// records. It normalises the upstream's loose response shape; error policy
// (empty batch + notice, never a hard failure) lives with the caller.
package hrclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
)

// Client fetches referral records from the configured webhook URL.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string, timeout time.Duration) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type fetchRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// FetchReferrals posts {phone, email} to the webhook and returns the raw
// records. The upstream sometimes returns a single object instead of an
// array; both are accepted and an object is wrapped into a one-element
// slice. Non-2xx responses and transport failures return an error; the
// service layer converts that to an empty batch with a notice.
func (c *Client) FetchReferrals(ctx context.Context, phone, email string) ([]domain.RawReferralRecord, error) {
	payload, err := json.Marshal(fetchRequest{Phone: phone, Email: email})
	if err != nil {
		return nil, fmt.Errorf("failed to encode fetch request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.ExternalServiceCall("hr-webhook", "FetchReferrals", "email", email)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("hr-webhook", "FetchReferrals", err)
		return nil, fmt.Errorf("referral fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("referral fetch returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("hr-webhook", "FetchReferrals", err)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ExternalServiceResult("hr-webhook", "FetchReferrals", err)
		return nil, fmt.Errorf("failed to read fetch response: %w", err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		logger.ExternalServiceResult("hr-webhook", "FetchReferrals", err)
		return nil, err
	}
	logger.ExternalServiceResult("hr-webhook", "FetchReferrals", nil, "records", len(records))
	return records, nil
}

func decodeRecords(body []byte) ([]domain.RawReferralRecord, error) {
	var records []domain.RawReferralRecord
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var single domain.RawReferralRecord
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("failed to decode fetch response: %w", err)
	}
	return []domain.RawReferralRecord{single}, nil
}
