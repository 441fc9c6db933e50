package court

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xkubaj03/tennis-club/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a court
// @Description  Admin-only: register a new court on an existing surface
// @Tags         admin,courts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body court.CreateCourtRequest true "Court payload"
// @Success      201 {object} court.Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/courts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List courts with their surfaces
// @Tags         courts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} court.CourtWithSurface
// @Router       /api/courts [get]
func (h *Handler) List(c *gin.Context) {
	courts, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, courts)
}

// @Summary      Get a court
// @Tags         courts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Court ID"
// @Success      200 {object} court.Court
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/courts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// @Summary      Update a court
// @Tags         admin,courts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Court ID"
// @Param        request body court.CreateCourtRequest true "Court payload"
// @Success      200 {object} court.Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/courts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a court
// @Tags         admin,courts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Court ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/courts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
