package timeline

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chartfold/chartfold/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/timeline/surgical", h.Surgical)
}

func (h *Handler) Surgical(c echo.Context) error {
	// No limit parameter means the whole timeline, not the list default.
	pg := pagination.FromContextWithDefault(c, 0)
	includeFullText := c.QueryParam("full_text") != "false"

	entries, err := h.svc.BuildSurgical(c.Request().Context(), pg.Limit, pg.Offset, includeFullText)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}
