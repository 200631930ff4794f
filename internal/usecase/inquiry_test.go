package usecase_test

import (
	"context"
	"errors"
	"testing"

	"techfix-backend/internal/domain"
	"techfix-backend/internal/usecase"
	"techfix-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func TestSendContactInquiryValidation(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewInquiryUsecase(sender)

	cases := []domain.ContactRequest{
		{Email: "a@b.com", Message: "hi"},                  // missing name
		{Name: "Ravi", Message: "hi"},                      // missing email
		{Name: "Ravi", Email: "a@b.com"},                   // missing message
		{Name: "   ", Email: "a@b.com", Message: "hi"},     // whitespace name
		{Name: "Ravi", Email: "a@b.com", Message: "   \t"}, // whitespace message
	}
	for _, req := range cases {
		err := uc.SendContactInquiry(context.Background(), &req)
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	}

	// The dispatcher must never be touched for rejected payloads
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendQuoteInquiryValidation(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewInquiryUsecase(sender)

	err := uc.SendQuoteInquiry(context.Background(), &domain.QuoteRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		// ProductName missing
	})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendQuoteInquiryComposesEmail(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewInquiryUsecase(sender)

	var sent email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

	err := uc.SendQuoteInquiry(context.Background(), &domain.QuoteRequest{
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		ProductName: `27" 4K IPS Monitor`,
	})
	assert.NoError(t, err)

	sender.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, `Quote Request: 27" 4K IPS Monitor`, sent.Subject)
	assert.Equal(t, "asha@example.com", sent.ReplyTo)
	assert.Contains(t, sent.TextBody, "Asha Rao")
}

func TestSendContactInquiryOptionalFields(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewInquiryUsecase(sender)

	var sent email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

	err := uc.SendContactInquiry(context.Background(), &domain.ContactRequest{
		Name:    "Ravi Kumar",
		Mobile:  "+91 98765 43210",
		Email:   "ravi@example.com",
		Service: "Data Recovery",
		Message: "My drive stopped\nspinning yesterday",
	})
	assert.NoError(t, err)

	assert.Contains(t, sent.TextBody, "Phone: +91 98765 43210")
	assert.Contains(t, sent.TextBody, "Service: Data Recovery")
	assert.Contains(t, sent.TextBody, "My drive stopped\nspinning yesterday")
}

func TestSendInquiryDispatcherFailure(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewInquiryUsecase(sender)

	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: auth failed"))

	err := uc.SendContactInquiry(context.Background(), &domain.ContactRequest{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Message: "hi",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingFields)
	assert.Contains(t, err.Error(), "smtp: auth failed")
}
