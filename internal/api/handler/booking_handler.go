package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
	"github.com/fix4home/admin-gateway/internal/credstore"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED CANCELLED"`
	Note   string `json:"note" validate:"max=500"`
}

// List returns the admin booking listing, optionally filtered by status.
func (h *BookingHandler) List(c echo.Context) error {
	in := ports.ListBookingsInput{
		Status: domain.BookingStatus(c.QueryParam("status")),
		Page:   intQuery(c, "page", 0),
		Limit:  intQuery(c, "limit", 0),
	}
	if in.Status != "" && !in.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: PENDING COMPLETED CANCELLED")
	}

	list, err := h.bookings.List(c.Request().Context(), credstore.FromContext(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Get(c.Request().Context(), credstore.FromContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// UpdateStatus transitions a booking. Only PENDING bookings move; the current
// status is fetched first so an impossible transition fails here instead of
// round-tripping a doomed request.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store := credstore.FromContext(c)
	current, err := h.bookings.Get(c.Request().Context(), store, id)
	if err != nil {
		return err
	}

	target := domain.BookingStatus(req.Status)
	if !current.Status.CanTransitionTo(target) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			"booking status "+string(current.Status)+" cannot change to "+req.Status)
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), store, id, ports.UpdateBookingStatusInput{
		Status: target,
		Note:   req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
