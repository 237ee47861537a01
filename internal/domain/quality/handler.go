package quality

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/quality", h.DataQuality)
	api.GET("/quality/coverage", h.Coverage)
}

func (h *Handler) DataQuality(c echo.Context) error {
	report, err := h.svc.DataQuality(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) Coverage(c echo.Context) error {
	cov, err := h.svc.CoverageMatrix(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, cov)
}
