package session

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-emi-collection/internal/services"

	"github.com/labstack/echo/v4"
)

type sessionHandler struct {
	controller services.Controller
}

// New session handler will initialize the session/ resources endpoint. The
// web view calls it when the collection screen is closed.
func New(app *echo.Group, controller services.Controller) {
	handler := sessionHandler{
		controller: controller,
	}
	app.DELETE("/session", handler.teardown)
}

func (h *sessionHandler) teardown(c echo.Context) error {
	h.controller.Teardown()

	return c.NoContent(nethttp.StatusNoContent)
}
