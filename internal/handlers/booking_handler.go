package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-services/internal/auth"
	"github.com/BruksfildServices01/hotel-services/internal/dto"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/httpresp"
	"github.com/BruksfildServices01/hotel-services/internal/middleware"
	"github.com/BruksfildServices01/hotel-services/internal/models"
	ucBooking "github.com/BruksfildServices01/hotel-services/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	get          *ucBooking.GetBooking
	listGuest    *ucBooking.ListGuestBookings
	listProvider *ucBooking.ListProviderBookings
	confirm      *ucBooking.ConfirmBooking
	cancel       *ucBooking.CancelBooking
	complete     *ucBooking.CompleteBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	listGuest *ucBooking.ListGuestBookings,
	listProvider *ucBooking.ListProviderBookings,
	confirm *ucBooking.ConfirmBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		get:          get,
		listGuest:    listGuest,
		listProvider: listProvider,
		confirm:      confirm,
		cancel:       cancel,
		complete:     complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time"`
}

// ======================================================
// CREATE / READ
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.Session(c), ucBooking.CreateBookingInput{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBookingDTO(*b))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id", "booking_not_found")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewBookingDTO(*b))
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.listGuest.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewBookingList(bookings))
}

func (h *BookingHandler) ListForProvider(c *gin.Context) {
	bookings, err := h.listProvider.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewBookingList(bookings))
}

// ======================================================
// TRANSITIONS
// ======================================================

type transitionFunc func(context.Context, *auth.Session, uint) (*models.Booking, error)

func (h *BookingHandler) transition(c *gin.Context, apply transitionFunc) {
	id, ok := idParam(c, "id", "booking_not_found")
	if !ok {
		return
	}

	b, err := apply(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewBookingDTO(*b))
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute)
}
