package payment

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/http"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"
	"bitbucket.org/Amartha/go-emi-collection/internal/services"

	"github.com/labstack/echo/v4"
)

type paymentHandler struct {
	controller services.Controller
}

// New payment handler will initialize the payments/ resources endpoint
func New(app *echo.Group, controller services.Controller) {
	handler := paymentHandler{
		controller: controller,
	}
	api := app.Group("/payments")
	api.POST("", handler.submitPayment)
	api.GET("/outcome", handler.getOutcome)
	api.DELETE("/outcome", handler.resetOutcome)
}

// submitPayment answers with the payment outcome. The status code follows the
// outcome: 400 for form errors, 422 when declined, 502 when unreachable. A
// body that cannot be bound gets the 422 validation body.
func (h *paymentHandler) submitPayment(c echo.Context) error {
	req := new(models.PaymentFormRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	outcome := h.controller.SubmitPayment(c.Request().Context(), req.AccountNumber, string(req.Amount))

	return http.RestSuccessResponse(c, http.StatusCodeFromError(outcome.Err), outcome.ToResponse())
}

func (h *paymentHandler) getOutcome(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, h.controller.CurrentPaymentOutcome().ToResponse())
}

func (h *paymentHandler) resetOutcome(c echo.Context) error {
	h.controller.ResetPaymentForm()

	return http.RestSuccessResponse(c, nethttp.StatusOK, h.controller.CurrentPaymentOutcome().ToResponse())
}
