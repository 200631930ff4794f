package domain

import (
	"context"
	"errors"
)

// InquiryKind selects which of the two public endpoints a payload belongs to.
// The contact and quote pipelines share all of their logic; the kind only
// drives required-field sets and user-facing wording.
type InquiryKind string

const (
	KindContact InquiryKind = "contact"
	KindQuote   InquiryKind = "quote"
)

// ErrMissingFields is returned by the usecase when a payload fails
// server-side required-field validation. Handlers translate it to the
// fixed 400 response body.
var ErrMissingFields = errors.New("missing required fields")

// ContactRequest is the body of POST /api/send-email.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email" binding:"required,email"`
	Service string `json:"service"`
	Message string `json:"message" binding:"required"`
}

// QuoteRequest is the body of POST /api/send-quote-email.
type QuoteRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,inquiry_phone"`
	Message     string `json:"message"`
	ProductName string `json:"productName" binding:"required"`
}

// Outcome classifies the result of one submission attempt as observed by
// the client side of the pipeline.
type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeValidationError    Outcome = "validation_error"
	OutcomeServiceUnavailable Outcome = "service_unavailable"
	OutcomeUnknownError       Outcome = "unknown_error"
)

// NotificationResult is the single value every submission attempt resolves
// to. Detail carries diagnostics and is not always shown to the user.
type NotificationResult struct {
	Outcome     Outcome
	UserMessage string
	Detail      string
}

// InquiryUsecase defines the server-side inquiry pipeline: validate the
// payload (the client is never trusted as the only gate) and hand a
// composed message to the mail dispatcher.
type InquiryUsecase interface {
	SendContactInquiry(ctx context.Context, req *ContactRequest) error
	SendQuoteInquiry(ctx context.Context, req *QuoteRequest) error
}
