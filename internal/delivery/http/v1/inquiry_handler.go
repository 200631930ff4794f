package v1

import (
	"errors"
	"net/http"

	"techfix-backend/internal/delivery/http/response"
	"techfix-backend/internal/domain"
	"techfix-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryUC domain.InquiryUsecase
}

// NewInquiryHandler registers the inquiry routes (public, no auth required)
func NewInquiryHandler(public *gin.RouterGroup, inquiryUC domain.InquiryUsecase) {
	handler := &InquiryHandler{
		inquiryUC: inquiryUC,
	}

	// Public Routes - NO authentication required
	public.POST("/send-email", handler.SendEmail)
	public.POST("/send-quote-email", handler.SendQuoteEmail)
}

// SendEmail godoc
// @Summary      Submit Contact Inquiry
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        inquiry  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /send-email [post]
func (h *InquiryHandler) SendEmail(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	if err := h.inquiryUC.SendContactInquiry(c.Request.Context(), &req); err != nil {
		c.Error(translate(err, domain.KindContact))
		return
	}

	response.Success(c, http.StatusOK, "Email sent successfully")
}

// SendQuoteEmail godoc
// @Summary      Submit Quote Request
// @Description  Request a quote for a specific product or service. This is a public endpoint.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        inquiry  body      domain.QuoteRequest  true  "Quote Request Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /send-quote-email [post]
func (h *InquiryHandler) SendQuoteEmail(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	if err := h.inquiryUC.SendQuoteInquiry(c.Request.Context(), &req); err != nil {
		c.Error(translate(err, domain.KindQuote))
		return
	}

	response.Success(c, http.StatusOK, "Quote request sent successfully")
}

// translate maps usecase failures onto the fixed wire-level error bodies.
// Anything raised by the mail dispatcher surfaces as a 500 with the
// underlying message in the details field.
func translate(err error, kind domain.InquiryKind) *apperror.AppError {
	if errors.Is(err, domain.ErrMissingFields) {
		return apperror.BadRequest("Missing required fields")
	}
	if kind == domain.KindQuote {
		return apperror.Internal("Failed to send quote request", err)
	}
	return apperror.Internal("Failed to send email", err)
}
