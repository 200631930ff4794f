package usecase

import (
	"context"
	"fmt"
	"strings"

	"techfix-backend/internal/domain"
	"techfix-backend/pkg/email"
)

type inquiryUsecase struct {
	sender email.Sender
}

// NewInquiryUsecase creates the usecase behind both public inquiry
// endpoints. Contact and quote submissions share the same pipeline;
// only required fields and wording differ.
func NewInquiryUsecase(sender email.Sender) domain.InquiryUsecase {
	return &inquiryUsecase{
		sender: sender,
	}
}

// SendContactInquiry validates a general contact submission and dispatches
// the notification email. Validation here is deliberate defense in depth;
// the client-side checks are never trusted as the only gate.
func (uc *inquiryUsecase) SendContactInquiry(ctx context.Context, req *domain.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return domain.ErrMissingFields
	}

	data := email.InquiryData{
		Heading:     "New Contact Inquiry",
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: strings.TrimSpace(req.Email),
		Mobile:      strings.TrimSpace(req.Mobile),
		Service:     strings.TrimSpace(req.Service),
		Message:     req.Message,
	}

	return uc.dispatch(ctx, data, "contact")
}

// SendQuoteInquiry validates a product/service quote submission and
// dispatches the notification email.
func (uc *inquiryUsecase) SendQuoteInquiry(ctx context.Context, req *domain.QuoteRequest) error {
	if strings.TrimSpace(req.FullName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.ProductName) == "" {
		return domain.ErrMissingFields
	}

	data := email.InquiryData{
		Heading:     "New Quote Request",
		SenderName:  strings.TrimSpace(req.FullName),
		SenderEmail: strings.TrimSpace(req.Email),
		Mobile:      strings.TrimSpace(req.Phone),
		ProductName: strings.TrimSpace(req.ProductName),
		Message:     req.Message,
	}

	return uc.dispatch(ctx, data, "quote")
}

// dispatch composes the two renderings and hands them to the mail
// dispatcher. Exactly one delivery attempt per call; duplicates produce
// duplicate emails by design.
func (uc *inquiryUsecase) dispatch(ctx context.Context, data email.InquiryData, kind string) error {
	msg, err := email.Compose(data)
	if err != nil {
		return fmt.Errorf("failed to compose %s email: %w", kind, err)
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}

	return nil
}
