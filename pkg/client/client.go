// Package client is the submission side of the inquiry pipeline: it
// performs the HTTP call against the inquiry API and translates
// transport-level and HTTP-level results into a NotificationResult.
// Every code path resolves into one of the named outcome categories;
// nothing is allowed to escape as a raw error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"techfix-backend/internal/domain"
)

// Endpoint paths, selected by call site rather than payload content.
const (
	EndpointContact = "/api/send-email"
	EndpointQuote   = "/api/send-quote-email"
)

// Fixed user-facing messages for outcomes where the server gave us
// nothing usable (or nothing at all).
const (
	msgTransportFailure  = "Unable to reach the server. Please check your internet connection and try again."
	msgMalformedResponse = "Server returned an invalid response. Please try again."
	msgMissingFields     = "Please fill in all required fields."
	msgGenericFailure    = "Something went wrong. Please try again."
)

// Config configures a Client.
type Config struct {
	// BaseURL of the inquiry API, e.g. "https://www.techfixsolutions.in".
	BaseURL string
	// FallbackEmail is embedded into the service-unavailable message so
	// the user always has a working channel.
	FallbackEmail string
	// HTTPClient overrides the default client (10s timeout) when set.
	HTTPClient *http.Client
}

// Client submits validated inquiry payloads. A Client makes exactly one
// attempt per call; there is no retry or backoff policy.
type Client struct {
	baseURL       string
	fallbackEmail string
	http          *http.Client
}

// New creates a submission client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		fallbackEmail: cfg.FallbackEmail,
		http:          httpClient,
	}
}

// wireResponse is the union of the API's success and error body shapes.
type wireResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

// SubmitContact posts a general contact inquiry.
func (c *Client) SubmitContact(ctx context.Context, req domain.ContactRequest) domain.NotificationResult {
	return c.submit(ctx, EndpointContact, req)
}

// SubmitQuote posts a product/service quote request.
func (c *Client) SubmitQuote(ctx context.Context, req domain.QuoteRequest) domain.NotificationResult {
	return c.submit(ctx, EndpointQuote, req)
}

func (c *Client) submit(ctx context.Context, path string, payload any) domain.NotificationResult {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.NotificationResult{
			Outcome:     domain.OutcomeUnknownError,
			UserMessage: msgGenericFailure,
			Detail:      err.Error(),
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return domain.NotificationResult{
			Outcome:     domain.OutcomeUnknownError,
			UserMessage: msgGenericFailure,
			Detail:      err.Error(),
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// No response exists to inspect: connectivity, DNS, or timeout.
		// Distinguished from every server-returned error.
		return domain.NotificationResult{
			Outcome:     domain.OutcomeUnknownError,
			UserMessage: msgTransportFailure,
			Detail:      err.Error(),
		}
	}
	defer resp.Body.Close()

	var wire wireResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&wire)

	switch resp.StatusCode {
	case http.StatusOK:
		if decodeErr != nil {
			// A nominal 200 with an unparseable body must not be claimed
			// as success without structured acknowledgment
			return domain.NotificationResult{
				Outcome:     domain.OutcomeUnknownError,
				UserMessage: msgMalformedResponse,
				Detail:      decodeErr.Error(),
			}
		}
		return domain.NotificationResult{
			Outcome:     domain.OutcomeSuccess,
			UserMessage: wire.Message,
		}

	case http.StatusBadRequest:
		msg := wire.Error
		if msg == "" {
			msg = msgMissingFields
		}
		return domain.NotificationResult{
			Outcome:     domain.OutcomeValidationError,
			UserMessage: msg,
			Detail:      wire.Details,
		}

	case http.StatusInternalServerError:
		return domain.NotificationResult{
			Outcome:     domain.OutcomeServiceUnavailable,
			UserMessage: c.unavailableMessage(),
			Detail:      wire.Details,
		}

	default:
		msg := wire.Error
		if msg == "" {
			msg = msgGenericFailure
		}
		return domain.NotificationResult{
			Outcome:     domain.OutcomeUnknownError,
			UserMessage: msg,
			Detail:      wire.Details,
		}
	}
}

// unavailableMessage is the fixed alternate-channel message shown when
// mail delivery fails server-side. The raw diagnostic stays in Detail.
func (c *Client) unavailableMessage() string {
	if c.fallbackEmail == "" {
		return "We could not send your inquiry right now. Please try again later or contact us directly."
	}
	return fmt.Sprintf("We could not send your inquiry right now. Please email us directly at %s.", c.fallbackEmail)
}
