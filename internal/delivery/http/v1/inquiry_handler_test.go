package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techfix-backend/config"
	v1 "techfix-backend/internal/delivery/http/v1"
	"techfix-backend/internal/domain"
	"techfix-backend/internal/usecase"
	"techfix-backend/pkg/email"
	"techfix-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type MockInquiryUC struct {
	mock.Mock
}

func (m *MockInquiryUC) SendContactInquiry(ctx context.Context, req *domain.ContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockInquiryUC) SendQuoteInquiry(ctx context.Context, req *domain.QuoteRequest) error {
	return m.Called(ctx, req).Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		RateLimitWindowSeconds:    60,
		RateLimitInquiryThreshold: 1000,
	}
}

func newRouter(uc domain.InquiryUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	return v1.NewRouter(v1.RouterDeps{
		InquiryUC: uc,
		Config:    testConfig(),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteEndToEnd(t *testing.T) {
	sender := new(MockSender)
	var sent email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

	r := newRouter(usecase.NewInquiryUsecase(sender))

	body := `{"fullName":"Asha Rao","email":"asha@example.com","phone":"9876543210","productName":"27\" 4K IPS Monitor","message":""}`
	w := doJSON(t, r, http.MethodPost, "/api/send-quote-email", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Quote request sent successfully"}`, w.Body.String())

	sender.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, `Quote Request: 27" 4K IPS Monitor`, sent.Subject)
	assert.Equal(t, "asha@example.com", sent.ReplyTo)
}

func TestContactSuccess(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	r := newRouter(usecase.NewInquiryUsecase(sender))

	body := `{"name":"Ravi","email":"ravi@example.com","message":"My laptop won't boot"}`
	w := doJSON(t, r, http.MethodPost, "/api/send-email", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, w.Body.String())
}

func TestMissingFields(t *testing.T) {
	sender := new(MockSender)
	r := newRouter(usecase.NewInquiryUsecase(sender))

	t.Run("Contact without message", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/send-email", `{"name":"Ravi","email":"ravi@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	})

	t.Run("Quote without product name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/send-quote-email", `{"fullName":"Asha","email":"asha@example.com","phone":"9876543210"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	})

	t.Run("Malformed JSON body", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/send-email", `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	})

	// No payload ever reached the dispatcher
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDeliveryFailure(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("dial tcp: connection refused"))

	r := newRouter(usecase.NewInquiryUsecase(sender))

	t.Run("Contact wording", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/send-email", `{"name":"Ravi","email":"ravi@example.com","message":"hi"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to send email", body["error"])
		assert.Contains(t, body["details"], "connection refused")
	})

	t.Run("Quote wording", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/send-quote-email", `{"fullName":"Asha","email":"asha@example.com","phone":"9876543210","productName":"SSD Upgrade"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to send quote request", body["error"])
	})
}

func TestMethodNotAllowed(t *testing.T) {
	sender := new(MockSender)
	r := newRouter(usecase.NewInquiryUsecase(sender))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := doJSON(t, r, method, "/api/send-email", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	uc := new(MockInquiryUC)
	var got *domain.QuoteRequest
	uc.On("SendQuoteInquiry", mock.Anything, mock.AnythingOfType("*domain.QuoteRequest")).
		Return(nil).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(*domain.QuoteRequest)
		})

	r := newRouter(uc)

	payload := domain.QuoteRequest{
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "+91 98765 43210",
		Message:     "Need it by Friday\nSecond line\n\nFourth line",
		ProductName: `27" 4K IPS Monitor`,
	}
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/send-quote-email", string(raw))
	assert.Equal(t, http.StatusOK, w.Code)

	// Every field must survive the wire exactly, line breaks included
	assert.Equal(t, payload, *got)
}

func TestHealth(t *testing.T) {
	sender := new(MockSender)
	r := newRouter(usecase.NewInquiryUsecase(sender))

	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"System operational"}`, w.Body.String())
}
