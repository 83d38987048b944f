package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/api/response"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler serves per-location loyalty settings.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// UpdateSettingsRequest is the body of PUT /locations/:id/settings.
type UpdateSettingsRequest struct {
	StampsForReward   int      `json:"stamps_for_reward" validate:"required,min=1"`
	RewardValue       float64  `json:"reward_value" validate:"gte=0"`
	MaxStampsPerVisit int      `json:"max_stamps_per_visit" validate:"required,min=1"`
	StampExpiryDays   *int     `json:"stamp_expiry_days" validate:"omitempty,gte=0"`
	MinPurchaseAmount *float64 `json:"min_purchase_amount" validate:"omitempty,gte=0"`
}

// GetSettings returns the location's settings or the program defaults.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	locationID, ok := parseUUID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	settings, err := h.settingsUC.Get(c.Request().Context(), actorID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"settings": settings})
}

// UpdateSettings replaces the location's settings.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	locationID, ok := parseUUID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	settings, err := h.settingsUC.Update(c.Request().Context(), actorID, locationID, &usecase.UpdateSettingsInput{
		StampsForReward:   req.StampsForReward,
		RewardValue:       req.RewardValue,
		MaxStampsPerVisit: req.MaxStampsPerVisit,
		StampExpiryDays:   req.StampExpiryDays,
		MinPurchaseAmount: req.MinPurchaseAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"settings": settings})
}
