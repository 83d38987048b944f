package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/api/response"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	Logger       *slog.Logger
}

// RedemptionHandler serves the reward redemption endpoint.
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUC: params.RedemptionUC,
		logger:       params.Logger,
	}
}

// RedeemRewardRequest is the body of POST /redeem-reward.
type RedeemRewardRequest struct {
	CustomerID     string `json:"customer_id" validate:"required,uuid"`
	LocationID     string `json:"location_id" validate:"required,uuid"`
	RewardType     string `json:"reward_type" validate:"required,max=100"`
	StampsToRedeem int    `json:"stamps_to_redeem"`
}

// RedeemReward consumes one reward's worth of stamps.
func (h *RedemptionHandler) RedeemReward(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req RedeemRewardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid redemption input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	customerID, ok := parseUUID(req.CustomerID)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "customer_id must be a non-nil UUID")
	}
	locationID, ok := parseUUID(req.LocationID)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a non-nil UUID")
	}
	result, err := h.redemptionUC.Redeem(c.Request().Context(), &usecase.RedeemInput{
		ActorID:        actorID,
		CustomerID:     customerID,
		LocationID:     locationID,
		RewardType:     req.RewardType,
		StampsToRedeem: req.StampsToRedeem,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"reward_record": result.Event,
		"customer_summary": echo.Map{
			"remaining_stamps":       result.Progress.Balance,
			"available_rewards":      result.Progress.AvailableRewards,
			"stamps_for_next_reward": result.Progress.StampsForNextReward,
		},
	})
}
