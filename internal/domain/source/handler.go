package source

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
	api.GET("/sources", h.ListSources)
	api.GET("/sources/loads", h.ListLoads)
	api.POST("/sources/loads", h.RecordLoad)
	api.GET("/sources/:source/last-load", h.LastLoad)
}

// RecordLoad is called by loader processes after an import batch so the
// coverage matrix and provenance endpoints stay accurate.
func (h *Handler) RecordLoad(c echo.Context) error {
	var log LoadLog
	if err := c.Bind(&log); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.RecordLoad(c.Request().Context(), &log); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, log)
}

func (h *Handler) ListSources(c echo.Context) error {
	sources, err := h.svc.Sources(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sources)
}

func (h *Handler) ListLoads(c echo.Context) error {
	loads, err := h.svc.ListLoads(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loads)
}

func (h *Handler) LastLoad(c echo.Context) error {
	load, err := h.svc.LastLoad(c.Request().Context(), c.Param("source"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "no loads recorded for source")
	}
	return c.JSON(http.StatusOK, load)
}
