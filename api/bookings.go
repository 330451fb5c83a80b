package api

import (
	"log"
	"net/http"

	"github.com/Domenick1991/camrent/internal/apperrors"
	"github.com/Domenick1991/camrent/internal/service/booking"
	"github.com/gin-gonic/gin"
)

const errProcessBooking = "Failed to process booking"

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
}

// create accepts any JSON document. The body is relayed as-is and never stored.
func (h *BookingHandler) create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errProcessBooking})
		return
	}

	ack, err := h.service.Accept(c.Request.Context(), body)
	if err != nil {
		log.Printf("api: accept booking: %v", err)
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": errProcessBooking})
		return
	}
	c.JSON(http.StatusOK, ack)
}
