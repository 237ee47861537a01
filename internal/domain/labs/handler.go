package labs

import (
	"net/http"
	"strings"

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
	api.GET("/labs", h.List)
	api.GET("/labs/duplicates", h.Duplicates)
	api.GET("/labs/trend", h.Trend)
	api.GET("/labs/abnormal", h.Abnormal)
	api.POST("/labs", h.Create)
}

func (h *Handler) Create(c echo.Context) error {
	var lab LabResult
	if err := c.Bind(&lab); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &lab); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, lab)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	labs, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(labs, total, pg.Limit, pg.Offset))
}

func (h *Handler) Duplicates(c echo.Context) error {
	groups, err := h.svc.Duplicates(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *Handler) Trend(c echo.Context) error {
	f := TrendFilter{
		TestName:  c.QueryParam("test"),
		TestLOINC: c.QueryParam("loinc"),
		StartDate: c.QueryParam("start"),
		EndDate:   c.QueryParam("end"),
	}
	if names := c.QueryParam("names"); names != "" {
		f.TestNames = strings.Split(names, ",")
	}
	if f.TestName == "" && f.TestLOINC == "" && len(f.TestNames) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "test, loinc, or names is required")
	}

	series, err := h.svc.Trend(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, series)
}

func (h *Handler) Abnormal(c echo.Context) error {
	results, err := h.svc.Abnormal(c.Request().Context(), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}
