package customer

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

// @Summary      List customers
// @Tags         admin,customers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} customer.Customer
// @Router       /api/customers [get]
func (h *Handler) List(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// @Summary      Get a customer
// @Tags         admin,customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Customer ID"
// @Success      200 {object} customer.Customer
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// @Summary      Delete a customer
// @Tags         admin,customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Customer ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
