package reports

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/otreport/otreport/internal/platform/llm"
	"github.com/otreport/otreport/internal/report"
	"github.com/otreport/otreport/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments/:id/report", h.GenerateReport)
	api.GET("/assessments/:id/reports", h.ListReportsByAssessment)

	api.GET("/reports", h.ListReports)
	api.GET("/reports/:id", h.GetReport)
	api.DELETE("/reports/:id", h.DeleteReport)

	api.POST("/reports/:id/sections/:key/regenerate", h.RegenerateSection)
	api.POST("/reports/:id/sections/:key/lock", h.LockSection)
	api.DELETE("/reports/:id/sections/:key/lock", h.UnlockSection)
}

func (h *Handler) GenerateReport(c echo.Context) error {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rep, err := h.svc.GenerateReport(c.Request().Context(), assessmentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusCreated, rep)
}

func (h *Handler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rep, err := h.svc.GetReport(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *Handler) ListReports(c echo.Context) error {
	pg := pagination.FromContext(c)
	reps, total, err := h.svc.ListReports(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(reps, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListReportsByAssessment(c echo.Context) error {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	pg := pagination.FromContext(c)
	reps, total, err := h.svc.ListReportsByAssessment(c.Request().Context(), assessmentID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(reps, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteReport(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.NoContent(http.StatusNoContent)
}

type regenerateRequest struct {
	Instructions string `json:"instructions"`
}

func (h *Handler) RegenerateSection(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req regenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rep, err := h.svc.RegenerateSection(c.Request().Context(), id, report.Section(c.Param("key")), req.Instructions)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, rep)
	case errors.Is(err, ErrSectionLocked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, llm.ErrDisabled):
		return echo.NewHTTPError(http.StatusBadRequest, "rewrite instructions require a configured LLM provider")
	default:
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
}

func (h *Handler) LockSection(c echo.Context) error {
	return h.setLock(c, true)
}

func (h *Handler) UnlockSection(c echo.Context) error {
	return h.setLock(c, false)
}

func (h *Handler) setLock(c echo.Context, locked bool) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rep, err := h.svc.SetSectionLock(c.Request().Context(), id, report.Section(c.Param("key")), locked)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, rep)
	case errors.Is(err, ErrSectionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
}
