package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/ncabrera/purchasing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// measureUnitHandler handles HTTP requests related to measure units.
type measureUnitHandler struct {
	measureUnitService portssvc.MeasureUnitSvcFacade
}

func newMeasureUnitHandler(ms portssvc.MeasureUnitSvcFacade) *measureUnitHandler {
	return &measureUnitHandler{measureUnitService: ms}
}

// registerMeasureUnitRoutes registers routes related to measure units.
func registerMeasureUnitRoutes(rg *gin.RouterGroup, measureUnitService portssvc.MeasureUnitSvcFacade) {
	h := newMeasureUnitHandler(measureUnitService)

	units := rg.Group("/measure-units")
	{
		units.POST("", h.createMeasureUnit)
		units.GET("", h.listMeasureUnits)
		units.GET("/:id", h.getMeasureUnitByID)
		units.PUT("/:id", h.updateMeasureUnit)
		units.DELETE("/:id", h.deleteMeasureUnit)
	}
}

// createMeasureUnit godoc
// @Summary Create a new measure unit
// @Tags measure-units
// @Accept  json
// @Produce  json
// @Param   unit body dto.CreateMeasureUnitRequest true "Measure unit details"
// @Success 201 {object} dto.MeasureUnitResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /measure-units [post]
func (h *measureUnitHandler) createMeasureUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMeasureUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	unit, err := h.measureUnitService.CreateMeasureUnit(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create measure unit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create measure unit"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMeasureUnitResponse(unit))
}

// listMeasureUnits godoc
// @Summary List measure units
// @Tags measure-units
// @Produce  json
// @Success 200 {array} dto.MeasureUnitResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /measure-units [get]
func (h *measureUnitHandler) listMeasureUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	units, err := h.measureUnitService.ListMeasureUnits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list measure units", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list measure units"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMeasureUnitResponses(units))
}

// getMeasureUnitByID godoc
// @Summary Get a measure unit by ID
// @Tags measure-units
// @Produce  json
// @Param   id path string true "Measure Unit ID (UUID)"
// @Success 200 {object} dto.MeasureUnitResponse
// @Failure 404 {object} ErrorResponse "Measure unit not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /measure-units/{id} [get]
func (h *measureUnitHandler) getMeasureUnitByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	measureUnitID := c.Param("id")

	unit, err := h.measureUnitService.GetMeasureUnitByID(c.Request.Context(), measureUnitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Measure unit not found"})
			return
		}
		logger.Error("Failed to get measure unit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve measure unit"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMeasureUnitResponse(unit))
}

// updateMeasureUnit godoc
// @Summary Update a measure unit
// @Tags measure-units
// @Accept  json
// @Produce  json
// @Param   id path string true "Measure Unit ID (UUID)"
// @Param   unit body dto.UpdateMeasureUnitRequest true "Fields to update"
// @Success 200 {object} dto.MeasureUnitResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Measure unit not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /measure-units/{id} [put]
func (h *measureUnitHandler) updateMeasureUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	measureUnitID := c.Param("id")

	var req dto.UpdateMeasureUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	unit, err := h.measureUnitService.UpdateMeasureUnit(c.Request.Context(), measureUnitID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Measure unit not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update measure unit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update measure unit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMeasureUnitResponse(unit))
}

// deleteMeasureUnit godoc
// @Summary Delete a measure unit
// @Tags measure-units
// @Produce  json
// @Param   id path string true "Measure Unit ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Measure unit not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /measure-units/{id} [delete]
func (h *measureUnitHandler) deleteMeasureUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	measureUnitID := c.Param("id")

	if err := h.measureUnitService.DeleteMeasureUnit(c.Request.Context(), measureUnitID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Measure unit not found"})
			return
		}
		logger.Error("Failed to delete measure unit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete measure unit"})
		return
	}

	c.Status(http.StatusNoContent)
}
