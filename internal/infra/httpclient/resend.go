package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/config"
)

// ResendClient is the HTTP client for the Resend transactional email API.
type ResendClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewResendClient(cfg *config.Config, log *zap.Logger) *ResendClient {
	return &ResendClient{
		BaseURL: strings.TrimRight(cfg.Mail.ResendBaseURL, "/"),
		APIKey:  cfg.Mail.ResendAPIKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Logger: log,
	}
}

type SendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type SendEmailResponse struct {
	ID string `json:"id"`
}

// APIError is the error body Resend returns on a non-2xx status.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("resend: request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// SendEmail calls POST /emails
func (c *ResendClient) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("resend api key is not configured")
	}

	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.Logger.Error("resend send failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = sonic.Unmarshal(body, apiErr)
		apiErr.StatusCode = resp.StatusCode
		return nil, apiErr
	}

	var result SendEmailResponse
	if err := sonic.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &result, nil
}
