package surface

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

// @Summary      Create a court surface
// @Tags         admin,surfaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body surface.CreateSurfaceRequest true "Surface payload"
// @Success      201 {object} surface.CourtSurface
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/surfaces [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateSurfaceRequest
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

// @Summary      List court surfaces
// @Tags         surfaces
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} surface.CourtSurface
// @Router       /api/surfaces [get]
func (h *Handler) List(c *gin.Context) {
	surfaces, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, surfaces)
}

// @Summary      Get a court surface
// @Tags         surfaces
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Surface ID"
// @Success      200 {object} surface.CourtSurface
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/surfaces/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid surface ID"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// @Summary      Update a court surface
// @Tags         admin,surfaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Surface ID"
// @Param        request body surface.CreateSurfaceRequest true "Surface payload"
// @Success      200 {object} surface.CourtSurface
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/surfaces/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid surface ID"})
		return
	}

	var req CreateSurfaceRequest
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

// @Summary      Delete a court surface
// @Tags         admin,surfaces
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Surface ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/surfaces/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid surface ID"})
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
