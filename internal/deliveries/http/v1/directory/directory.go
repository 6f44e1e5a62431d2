package directory

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/http"
	"bitbucket.org/Amartha/go-emi-collection/internal/services"

	"github.com/labstack/echo/v4"
)

type directoryHandler struct {
	controller services.Controller
}

// New directory handler will initialize the directory/ resources endpoint
func New(app *echo.Group, controller services.Controller) {
	handler := directoryHandler{
		controller: controller,
	}
	api := app.Group("/directory")
	api.POST("/load", handler.loadDirectory)
	api.GET("", handler.getDirectory)
}

// loadDirectory fetches the loan directory again. A failed fetch still
// answers with the directory state, under a 502.
func (h *directoryHandler) loadDirectory(c echo.Context) error {
	state := h.controller.LoadDirectory(c.Request().Context())

	return http.RestSuccessResponse(c, http.StatusCodeFromError(state.Err), state.ToResponse())
}

func (h *directoryHandler) getDirectory(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, h.controller.CurrentDirectoryState().ToResponse())
}
