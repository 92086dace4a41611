package handlers

import (
	"errors"

	"github.com/drivehub/carrental/internal/dto"
	"github.com/drivehub/carrental/internal/middleware"
	"github.com/drivehub/carrental/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	bookings, err := h.bookingService.List(ident.UserID, ident.Role)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(bookings)
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking id",
		})
	}

	booking, err := h.bookingService.Get(id, ident.UserID, ident.Role)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(booking)
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	booking, err := h.bookingService.Create(ident.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadDates), errors.Is(err, services.ErrCarUnavailable):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrCarNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Car not found",
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking id",
		})
	}

	var req dto.BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.bookingService.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, services.ErrBadStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid status",
			})
		}
		return bookingError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel is the delete endpoint: bookings are soft-cancelled, never removed.
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking id",
		})
	}

	if err := h.bookingService.Cancel(id, ident.UserID, ident.Role); err != nil {
		return bookingError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func bookingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Booking not found",
		})
	case errors.Is(err, services.ErrBookingForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	}
	return internalError(c)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
