package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/config"
	"github.com/jaev1996/atria-fitness/internal/engine"
	"github.com/jaev1996/atria-fitness/internal/model"
)

// SettingsHandler exposes the per-room payroll rate configuration.
type SettingsHandler struct {
	Service *engine.Service
}

// NewSettingsHandler constructs a SettingsHandler.  The service must be
// non-nil.
func NewSettingsHandler(svc *engine.Service) *SettingsHandler {
	if svc == nil {
		panic("nil service passed to NewSettingsHandler")
	}
	return &SettingsHandler{Service: svc}
}

// Rates handles GET /v1/settings/rates and returns the effective rate per
// room, overrides applied over catalog defaults.
func (h *SettingsHandler) Rates(c echo.Context) error {
	rates, err := h.Service.EffectiveRates(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rates)
}

// Disciplines handles GET /v1/settings/disciplines and returns the class
// types offered across the room catalog, for enrollment and plan forms.
func (h *SettingsHandler) Disciplines(c echo.Context) error {
	return c.JSON(http.StatusOK, config.Disciplines())
}

// UpdateRate handles PUT /v1/settings/rates/:roomId.
func (h *SettingsHandler) UpdateRate(c echo.Context) error {
	var body model.RoomRate
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Service.UpdateRoomRate(c.Request().Context(), c.Param("roomId"), body); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResetRate handles DELETE /v1/settings/rates/:roomId, dropping the
// stored override so the room falls back to its catalog default.
func (h *SettingsHandler) ResetRate(c echo.Context) error {
	if err := h.Service.ResetRoomRate(c.Request().Context(), c.Param("roomId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
