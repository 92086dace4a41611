package handlers

import (
	"github.com/drivehub/carrental/internal/middleware"
	"github.com/drivehub/carrental/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	resp, err := h.dashboardService.Admin()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(resp)
}

func (h *DashboardHandler) User(c *fiber.Ctx) error {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.dashboardService.User(ident.UserID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(resp)
}
