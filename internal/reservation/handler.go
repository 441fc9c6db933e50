package reservation

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

// @Summary      Create a reservation
// @Description  Books a court for the given interval; the customer is created from the phone number if unknown. Returns the reservation with its computed price.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body reservation.CreateReservationRequest true "Reservation payload"
// @Success      201 {object} reservation.ReservationDetail
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/reservations [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
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

// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} reservation.ReservationDetail
// @Router       /api/reservations [get]
func (h *Handler) List(c *gin.Context) {
	reservations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Reservation ID"
// @Success      200 {object} reservation.ReservationDetail
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/reservations/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// @Summary      Update a reservation
// @Description  Replaces a reservation's interval, court, game type and customer; the reservation's own slot does not count against it.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Reservation ID"
// @Param        request body reservation.CreateReservationRequest true "Reservation payload"
// @Success      200 {object} reservation.ReservationDetail
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/reservations/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	var req CreateReservationRequest
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

// @Summary      Cancel a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Reservation ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/reservations/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      List reservations for a court
// @Description  Returns the court's reservations ordered by creation time.
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        number path int true "Court number"
// @Success      200 {array} reservation.ReservationDetail
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/reservations/court/{number} [get]
func (h *Handler) ListByCourt(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court number"})
		return
	}

	reservations, err := h.service.GetByCourtNumber(c.Request.Context(), number)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// @Summary      List reservations for a customer
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        number path string true "Customer phone number"
// @Param        futureOnly query bool false "Only reservations that have not started yet"
// @Success      200 {array} reservation.ReservationDetail
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/reservations/phone/{number} [get]
func (h *Handler) ListByPhone(c *gin.Context) {
	futureOnly, _ := strconv.ParseBool(c.DefaultQuery("futureOnly", "false"))

	reservations, err := h.service.GetByCustomerPhone(c.Request.Context(), c.Param("number"), futureOnly)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}
